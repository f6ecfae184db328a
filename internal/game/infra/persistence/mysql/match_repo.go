package mysql

import (
	"LuxAI/internal/game/entity"
	"LuxAI/internal/game/infra/persistence/model"
	"LuxAI/internal/shared/gameconfig/match"
	"LuxAI/modules/kit/errx"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	OpLoadMatch = "repo.match.mysql.LoadMatch"
	OpSaveMatch = "repo.match.mysql.Save"
)

const saveBatchSize = 200

type MatchRepository struct {
	db      *gorm.DB
	configs *match.Config
}

func NewMatchRepository(db *gorm.DB, configs *match.Config) *MatchRepository {
	return &MatchRepository{db: db, configs: configs}
}

// AutoMigrate 建表，只在开发环境启动时调用。
func (r *MatchRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&model.MatchMeta{}, &model.MatchCell{})
}

func (r *MatchRepository) WithTx(tx *gorm.DB) *MatchRepository {
	return &MatchRepository{db: tx, configs: r.configs}
}

func (r *MatchRepository) LoadMatch(ctx context.Context, id entity.MatchID) (*entity.Match, error) {
	var meta model.MatchMeta
	err := r.db.WithContext(ctx).Where("match_id = ?", int64(id)).First(&meta).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.NewMatch(id, r.configs), nil
	case err != nil:
		return nil, r.wrap(OpLoadMatch, id, err)
	}

	var rows []model.MatchCell
	if err := r.db.WithContext(ctx).Where("match_id = ?", int64(id)).Order("y, x").Find(&rows).Error; err != nil {
		return nil, r.wrap(OpLoadMatch, id, err)
	}

	s := &entity.MatchPersistSnapshot{
		Version: meta.Version,
		MatchID: id,
		Width:   meta.Width,
		Height:  meta.Height,
		Cells:   make([]entity.CellState, 0, len(rows)),
	}
	for _, row := range rows {
		st, err := model.RowToCellState(row)
		if err != nil {
			return nil, errx.ErrInternal.WithDataMap(map[string]any{"op": OpLoadMatch, "match_id": id, "x": row.X, "y": row.Y}).WithCause(err)
		}
		s.Cells = append(s.Cells, st)
	}
	return entity.HydrateMatch(r.configs, s), nil
}

// Save 在一个事务里整体替换该对局的格子；库里版本更高时跳过。
func (r *MatchRepository) Save(ctx context.Context, s *entity.MatchPersistSnapshot) error {
	if s == nil {
		return nil
	}
	now := time.Now()
	rows := make([]model.MatchCell, 0, len(s.Cells))
	for _, st := range s.Cells {
		row, err := model.CellStateToRow(s.MatchID, s.Version, st, now)
		if err != nil {
			return errx.ErrInternal.WithDataMap(map[string]any{"op": OpSaveMatch, "match_id": s.MatchID}).WithCause(err)
		}
		rows = append(rows, row)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meta model.MatchMeta
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("match_id = ?", int64(s.MatchID)).First(&meta).Error
		switch {
		case err == nil:
			if meta.Version > s.Version {
				return nil
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		meta = model.MatchMeta{
			MatchID:   int64(s.MatchID),
			Version:   s.Version,
			Width:     s.Width,
			Height:    s.Height,
			UpdatedAt: now,
		}
		if err := tx.Save(&meta).Error; err != nil {
			return err
		}
		if err := tx.Where("match_id = ?", int64(s.MatchID)).Delete(&model.MatchCell{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, saveBatchSize).Error
	})
	if err != nil {
		return r.wrap(OpSaveMatch, s.MatchID, err)
	}
	return nil
}

func (r *MatchRepository) wrap(op string, id entity.MatchID, err error) error {
	return errx.ErrUnavailable.WithDataMap(map[string]any{"op": op, "match_id": id}).WithCause(err)
}
