package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chainfly-client/domain/history"
	pkgerrors "chainfly-client/pkg/errors"
)

type fakeMirror[E history.Entry] struct {
	saved    []E
	listed   []E
	saveErr  error
	listErr  error
	clearErr error
	cleared  bool
}

func (m *fakeMirror[E]) Save(_ context.Context, entry E) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, entry)
	return nil
}

func (m *fakeMirror[E]) List(_ context.Context) ([]E, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listed, nil
}

func (m *fakeMirror[E]) Clear(_ context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.cleared = true
	return nil
}

func downloadEntry(id string) history.DownloadEntry {
	return history.DownloadEntry{ID: id, ZipName: "bundle"}
}

func TestLog_AppendPrependsNewestFirst(t *testing.T) {
	mirror := &fakeMirror[history.DownloadEntry]{}
	log := NewLog[history.DownloadEntry](mirror, zap.NewNop())

	require.NoError(t, log.Append(context.Background(), downloadEntry("first")))
	require.NoError(t, log.Append(context.Background(), downloadEntry("second")))

	all := log.All()
	require.Len(t, all, 2)
	assert.Equal(t, "second", all[0].ID)
	assert.Equal(t, "first", all[1].ID)
	assert.Len(t, mirror.saved, 2)
}

func TestLog_AppendKeepsLocalEntryWhenMirrorFails(t *testing.T) {
	mirror := &fakeMirror[history.DownloadEntry]{saveErr: errors.New("remote down")}
	log := NewLog[history.DownloadEntry](mirror, zap.NewNop())

	err := log.Append(context.Background(), downloadEntry("kept"))

	require.Error(t, err)
	assert.True(t, pkgerrors.IsMirror(err))
	require.Equal(t, 1, log.Len(), "local append must survive a mirror failure")
	assert.Equal(t, "kept", log.All()[0].ID)
}

func TestLog_ClearEmptiesLocallyEvenWhenMirrorFails(t *testing.T) {
	mirror := &fakeMirror[history.DownloadEntry]{clearErr: errors.New("remote down")}
	log := NewLog[history.DownloadEntry](mirror, zap.NewNop())
	require.NoError(t, log.Append(context.Background(), downloadEntry("x")))

	err := log.Clear(context.Background())

	require.Error(t, err)
	assert.True(t, pkgerrors.IsMirror(err))
	assert.Equal(t, 0, log.Len())
}

func TestLog_LoadAllReplacesLocalEntries(t *testing.T) {
	mirror := &fakeMirror[history.DownloadEntry]{
		listed: []history.DownloadEntry{downloadEntry("remote-1"), downloadEntry("remote-2")},
	}
	log := NewLog[history.DownloadEntry](mirror, zap.NewNop())
	require.NoError(t, log.Append(context.Background(), downloadEntry("local")))

	require.NoError(t, log.LoadAll(context.Background()))

	all := log.All()
	require.Len(t, all, 2)
	assert.Equal(t, "remote-1", all[0].ID)
	assert.Equal(t, "remote-2", all[1].ID)
}

func TestLog_LoadAllWithEmptyRemoteYieldsEmptyList(t *testing.T) {
	mirror := &fakeMirror[history.DownloadEntry]{listed: nil}
	log := NewLog[history.DownloadEntry](mirror, zap.NewNop())
	require.NoError(t, log.Append(context.Background(), downloadEntry("local")))

	require.NoError(t, log.LoadAll(context.Background()))

	assert.NotNil(t, log.All())
	assert.Equal(t, 0, log.Len())
}

func TestLog_AllReturnsACopy(t *testing.T) {
	mirror := &fakeMirror[history.DownloadEntry]{}
	log := NewLog[history.DownloadEntry](mirror, zap.NewNop())
	require.NoError(t, log.Append(context.Background(), downloadEntry("original")))

	all := log.All()
	all[0] = downloadEntry("mutated")

	assert.Equal(t, "original", log.All()[0].ID)
}
