package commands

import (
	"context"
	"io"
	"strconv"

	"go.uber.org/zap"

	"chainfly-client/application/ports"
	"chainfly-client/application/session"
	"chainfly-client/domain/history"
	"chainfly-client/domain/records"
)

type memoryMirror[E history.Entry] struct {
	saved   []E
	saveErr error
}

func (m *memoryMirror[E]) Save(_ context.Context, entry E) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, entry)
	return nil
}

func (m *memoryMirror[E]) List(_ context.Context) ([]E, error) { return m.saved, nil }

func (m *memoryMirror[E]) Clear(_ context.Context) error {
	m.saved = nil
	return nil
}

type testSession struct {
	*session.Session
	downloads *memoryMirror[history.DownloadEntry]
	reminders *memoryMirror[history.ReminderEntry]
}

func newTestSession() *testSession {
	downloads := &memoryMirror[history.DownloadEntry]{}
	reminders := &memoryMirror[history.ReminderEntry]{}
	return &testSession{
		Session:   session.New(downloads, reminders, zap.NewNop()),
		downloads: downloads,
		reminders: reminders,
	}
}

type fakeReminderAPI struct {
	setCalls    []records.Reminder
	setTest     []bool
	setErr      error
	deleteCalls []string
	deleteErr   error
	listed      []records.Reminder
}

func (f *fakeReminderAPI) SetReminder(_ context.Context, reminder records.Reminder, test bool) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setCalls = append(f.setCalls, reminder)
	f.setTest = append(f.setTest, test)
	return nil
}

func (f *fakeReminderAPI) ListReminders(_ context.Context) ([]records.Reminder, error) {
	return f.listed, nil
}

func (f *fakeReminderAPI) DeleteReminder(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleteCalls = append(f.deleteCalls, id)
	return nil
}

type fakeDocumentAPI struct {
	uploads   []ports.UploadRequest
	uploadErr error
	listed    []records.Document
	listErr   error
}

func (f *fakeDocumentAPI) UploadDocument(_ context.Context, req ports.UploadRequest) (ports.UploadResult, error) {
	if f.uploadErr != nil {
		return ports.UploadResult{}, f.uploadErr
	}
	if req.Content != nil {
		io.Copy(io.Discard, req.Content)
	}
	f.uploads = append(f.uploads, req)
	return ports.UploadResult{FilePath: "uploads/stored-" + strconv.Itoa(len(f.uploads)) + ".pdf"}, nil
}

func (f *fakeDocumentAPI) ListDocuments(_ context.Context) ([]records.Document, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listed, nil
}

type fakeSink struct {
	filename string
	data     []byte
	err      error
}

func (f *fakeSink) SaveArchive(filename string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.filename = filename
	f.data = data
	return "/downloads/" + filename, nil
}

type mapFetcher map[string][]byte

func (m mapFetcher) FetchFile(_ context.Context, storedFilename string) ([]byte, error) {
	data, ok := m[storedFilename]
	if !ok {
		return nil, errNotFound
	}
	return data, nil
}

type notFoundError struct{}

func (notFoundError) Error() string { return "file not found" }

var errNotFound = notFoundError{}
