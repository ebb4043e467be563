package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/code4projects/raceboard/models"
)

// RaceService owns all reads and writes of races. Every mutating
// operation runs in its own transaction: the full set of field changes
// commits, or none do.
type RaceService struct {
	db *bun.DB
}

// NewRaceService creates a RaceService bound to the given database.
func NewRaceService(db *bun.DB) *RaceService {
	return &RaceService{db: db}
}

// GetAll returns every race in storage order.
func (s *RaceService) GetAll(ctx context.Context) ([]models.Race, error) {
	var races []models.Race
	if err := s.db.NewSelect().Model(&races).Scan(ctx); err != nil {
		return nil, fmt.Errorf("selecting races: %w", err)
	}
	return races, nil
}

// GetByID returns the race with the given id, or ErrRaceNotFound.
func (s *RaceService) GetByID(ctx context.Context, id int) (*models.Race, error) {
	race := &models.Race{}
	err := s.db.NewSelect().Model(race).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRaceNotFound
		}
		return nil, fmt.Errorf("selecting race %d: %w", id, err)
	}
	return race, nil
}

// Create persists a new race and returns it with its assigned id.
func (s *RaceService) Create(ctx context.Context, in RaceInput) (*models.Race, error) {
	race := &models.Race{}
	in.ApplyTo(race)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(race).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("inserting race: %w", err)
	}
	return race, nil
}

// Update overwrites every mutable field of an existing race and
// returns the updated record. Fails with ErrRaceNotFound if the id is
// unknown.
func (s *RaceService) Update(ctx context.Context, id int, in RaceInput) (*models.Race, error) {
	race := &models.Race{}
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(race).Where("id = ?", id).Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRaceNotFound
			}
			return err
		}
		in.ApplyTo(race)
		_, err := tx.NewUpdate().Model(race).WherePK().Exec(ctx)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrRaceNotFound) {
			return nil, ErrRaceNotFound
		}
		return nil, fmt.Errorf("updating race %d: %w", id, err)
	}
	return race, nil
}

// Delete removes the race with the given id. Fails with
// ErrRaceNotFound if no row matched; deleting the same id twice is
// safe in that sense.
func (s *RaceService) Delete(ctx context.Context, id int) error {
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().Model((*models.Race)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrRaceNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRaceNotFound) {
			return ErrRaceNotFound
		}
		return fmt.Errorf("deleting race %d: %w", id, err)
	}
	return nil
}
