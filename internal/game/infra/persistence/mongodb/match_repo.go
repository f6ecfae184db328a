package mongodb

import (
	"LuxAI/internal/game/entity"
	"LuxAI/internal/game/infra/persistence/model"
	"LuxAI/internal/shared/gameconfig/match"
	"LuxAI/modules/kit/errx"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultCollectionName = "match_map"

const (
	OpLoadMatch = "repo.match.mongodb.LoadMatch"
	OpSaveMatch = "repo.match.mongodb.Save"
)

type MatchRepository struct {
	coll    *mongo.Collection
	configs *match.Config
}

func NewMatchRepository(db *mongo.Database, configs *match.Config) *MatchRepository {
	return &MatchRepository{
		coll:    db.Collection(defaultCollectionName),
		configs: configs,
	}
}

func (r *MatchRepository) LoadMatch(ctx context.Context, id entity.MatchID) (*entity.Match, error) {
	if r == nil || r.coll == nil {
		return nil, errx.ErrInternal.WithData("op", OpLoadMatch).WithCause(errors.New("mongodb collection is nil"))
	}

	var doc model.MatchDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": int64(id)}).Decode(&doc)
	switch {
	case err == nil:
		return entity.HydrateMatch(r.configs, model.MatchDocToSnapshot(doc)), nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return entity.NewMatch(id, r.configs), nil
	default:
		return nil, errx.ErrUnavailable.WithDataMap(map[string]any{"op": OpLoadMatch, "match_id": id}).WithCause(err)
	}
}

// Save 按版本条件 upsert：库里版本更高时不覆盖。
func (r *MatchRepository) Save(ctx context.Context, s *entity.MatchPersistSnapshot) error {
	if s == nil {
		return nil
	}
	if r == nil || r.coll == nil {
		return errx.ErrInternal.WithData("op", OpSaveMatch).WithCause(errors.New("mongodb collection is nil"))
	}

	doc := model.MatchSnapshotToDoc(s, time.Now())
	filter := bson.M{
		"_id":     doc.MatchID,
		"version": bson.M{"$lte": doc.Version},
	}
	_, err := r.coll.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// 库里已有更高版本，filter 不命中后 upsert 撞主键
		return nil
	}
	if err != nil {
		return errx.ErrUnavailable.WithDataMap(map[string]any{"op": OpSaveMatch, "match_id": s.MatchID}).WithCause(err)
	}
	return nil
}
