package repo

import (
	"testing"

	"github.com/beka-birhanu/mazegen/settings"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSettingsDocument(t *testing.T) {
	owner := uuid.New()
	want := settings.Settings{RowCount: 7, ColumnCount: 11, CellSize: 0.5, CreateSlab: true}
	record, err := want.MarshalBinary()
	require.NoError(t, err)

	doc := newSettingsDocument(owner, record)
	assert.Equal(t, "1.0", doc.Version)

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var decoded settingsDocument
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, owner, decoded.OwnerID)

	got, err := decoded.settings()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsDocument_CorruptRecord(t *testing.T) {
	doc := newSettingsDocument(uuid.New(), []byte{1, 2, 3})
	_, err := doc.settings()
	assert.ErrorIs(t, err, settings.ErrCorruptRecord)
}
