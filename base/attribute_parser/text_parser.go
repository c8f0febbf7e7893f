package attribute_parser

import (
	"regexp"

	"github.com/tidwall/pretty"

	"github.com/x-xyz/artmint/domain/trait"
)

var keyValuePattern = regexp.MustCompile(`"key":"([^"]+)","value":"([^"]+)"`)

// parseText scrapes "key":"..","value":".." pairs out of the serialized record.
// Whitespace is stripped first so pretty printed records match as well.
func parseText(raw []byte) trait.Selection {
	res := trait.Selection{}
	for _, m := range keyValuePattern.FindAllSubmatch(pretty.Ugly(raw), -1) {
		res[string(m[1])] = string(m[2])
	}
	return res
}
