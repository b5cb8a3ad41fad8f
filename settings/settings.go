// Package settings describes the parameters of a maze placement and their persisted record.
package settings

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultRowCount    = 10
	DefaultColumnCount = 20
	DefaultCellSize    = 2.0
)

var (
	ErrInvalidSettings = errors.New("invalid maze settings")
)

// Settings holds what a caller chooses before a maze is placed.
type Settings struct {
	RowCount    uint32  `json:"row_count" bson:"rowCount"`       // Number of maze rows
	ColumnCount uint32  `json:"column_count" bson:"columnCount"` // Number of maze columns
	CellSize    float64 `json:"cell_size" bson:"cellSize"`       // Edge length of one cell
	CreateGroup bool    `json:"create_group" bson:"createGroup"` // Group the placed elements
	CreateSlab  bool    `json:"create_slab" bson:"createSlab"`   // Place a slab under the maze
}

// Default returns the settings used when nothing was saved yet.
func Default() Settings {
	return Settings{
		RowCount:    DefaultRowCount,
		ColumnCount: DefaultColumnCount,
		CellSize:    DefaultCellSize,
	}
}

// Validate checks the settings against a maximum row and column count.
func (s Settings) Validate(maxDimension int) error {
	if s.RowCount == 0 || int64(s.RowCount) > int64(maxDimension) {
		return fmt.Errorf("%w: row count must be between 1 and %d", ErrInvalidSettings, maxDimension)
	}
	if s.ColumnCount == 0 || int64(s.ColumnCount) > int64(maxDimension) {
		return fmt.Errorf("%w: column count must be between 1 and %d", ErrInvalidSettings, maxDimension)
	}
	if math.IsNaN(s.CellSize) || math.IsInf(s.CellSize, 0) || s.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be a positive number", ErrInvalidSettings)
	}
	return nil
}

// Width returns the extent of the maze along x.
func (s Settings) Width() float64 {
	return float64(s.ColumnCount) * s.CellSize
}

// Height returns the extent of the maze along y.
func (s Settings) Height() float64 {
	return float64(s.RowCount) * s.CellSize
}
