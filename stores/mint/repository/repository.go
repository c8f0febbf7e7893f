package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/database/mongoclient"
	"github.com/x-xyz/artmint/base/log"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/mint"
	"github.com/x-xyz/artmint/service/query"
)

const maxLimit = 100

// Indexes are the indexes FindAll relies on. A digest confirms at most one
// session.
var Indexes = []query.Index{
	{Name: "sender_createdAt", Keys: []string{"sender", "createdAt"}},
	{Name: "status", Keys: []string{"status"}},
	{Name: "splitDigest", Keys: []string{"splitDigest"}, Unique: true, Sparse: true},
	{Name: "mintDigest", Keys: []string{"mintDigest"}, Unique: true, Sparse: true},
	{Name: "attributesDigest", Keys: []string{"attributesDigest"}, Unique: true, Sparse: true},
}

type impl struct {
	query query.Mongo
}

func New(query query.Mongo) mint.Repo {
	return &impl{query}
}

func (im *impl) Insert(c ctx.Ctx, s *mint.Session) error {
	if err := im.query.Insert(c, domain.TableMintSessions, s); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  s.Id,
		}).Error("failed to query.Insert")
		return err
	}
	return nil
}

func (im *impl) FindOne(c ctx.Ctx, id string) (*mint.Session, error) {
	res := mint.Session{}
	err := im.query.FindOne(c, domain.TableMintSessions, bson.M{"_id": id}, &res)
	if errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to query.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) FindAll(c ctx.Ctx, options ...mint.FindAllOptionsFunc) ([]*mint.Session, error) {
	opts, err := mint.GetFindAllOptions(options...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to mint.GetFindAllOptions")
		return nil, err
	}

	q := bson.M{}
	if opts.Sender != nil {
		q["sender"] = *opts.Sender
	}
	if opts.Status != nil {
		q["status"] = *opts.Status
	}
	limit := opts.Limit
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}

	res := []*mint.Session{}
	if err := im.query.Search(c, domain.TableMintSessions, opts.Offset, limit, "-createdAt", q, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"query": q,
		}).Error("failed to query.Search")
		return nil, err
	}
	return res, nil
}

func (im *impl) FindByDigest(c ctx.Ctx, digest domain.TxDigest) (*mint.Session, error) {
	q := bson.M{"$or": bson.A{
		bson.M{"splitDigest": digest},
		bson.M{"mintDigest": digest},
		bson.M{"attributesDigest": digest},
	}}
	res := mint.Session{}
	err := im.query.FindOne(c, domain.TableMintSessions, q, &res)
	if errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"digest": digest,
		}).Error("failed to query.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) Transit(c ctx.Ctx, id string, from mint.Status, patch *mint.SessionPatch) error {
	update, err := mongoclient.SetFields(patch)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.SetFields failed")
		return err
	}

	err = im.query.Patch(c, domain.TableMintSessions, bson.M{"_id": id, "status": from}, update)
	if errors.Is(err, query.ErrNotFound) {
		// tell a missing session from one in another status
		if _, err := im.FindOne(c, id); err != nil {
			return err
		}
		return domain.ErrMintStatus
	} else if errors.Is(err, query.ErrDuplicateKey) {
		return xerrors.Errorf("digest already confirms another session: %w", domain.ErrMintStatus)
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"id":   id,
			"from": from,
		}).Error("failed to query.Patch")
		return err
	}
	return nil
}
