package mongoclient

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// SetFields builds a $set document from a patch struct. Zero fields are
// skipped, non-nil pointers are set to what they point at, so a pointer to
// an empty value still clears the field.
func SetFields(patch interface{}) (bson.M, error) {
	val := reflect.Indirect(reflect.ValueOf(patch))
	typ := val.Type()
	res := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !typ.Field(i).IsExported() || field.IsZero() {
			continue
		}
		tag, err := bsoncodec.DefaultStructTagParser(typ.Field(i))
		if err != nil {
			return nil, err
		}
		if tag.Skip {
			continue
		}
		if field.Kind() == reflect.Ptr {
			field = field.Elem()
		}
		res[tag.Name] = field.Interface()
	}
	return res, nil
}
