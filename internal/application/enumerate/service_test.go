package enumerate

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/shellpick/internal/domain"
	"github.com/doeshing/shellpick/internal/pkg/logger"
)

func TestListReturnsStrategyResult(t *testing.T) {
	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	recorder := &stubRecorder{}
	svc := &Service{
		Strategy: stubStrategy{name: "posix", shells: []domain.ShellName{"/bin/sh", "/bin/bash"}},
		Logger:   logger.NewStd(false),
		Recorder: recorder,
		Now:      func() time.Time { return at },
	}

	list := svc.List(context.Background())

	if diff := cmp.Diff([]domain.ShellName{"/bin/sh", "/bin/bash"}, list.Shells); diff != "" {
		t.Errorf("Shells mismatch (-want +got):\n%s", diff)
	}
	if list.Strategy != "posix" || !list.ScannedAt.Equal(at) {
		t.Errorf("unexpected metadata: %+v", list)
	}
	if len(recorder.saved) != 1 {
		t.Fatalf("expected one recorded scan, got %d", len(recorder.saved))
	}
	if got := recorder.saved[0]; got.Count != 2 || got.Strategy != "posix" || !got.Timestamp.Equal(at) {
		t.Errorf("unexpected record: %+v", got)
	}
}

func TestListIgnoresRecorderFailure(t *testing.T) {
	var buf bytes.Buffer
	svc := &Service{
		Strategy: stubStrategy{name: "windows", shells: []domain.ShellName{"cmd"}},
		Logger:   logger.New(&buf, true),
		Recorder: &stubRecorder{err: errors.New("database is locked")},
	}

	list := svc.List(context.Background())

	if diff := cmp.Diff([]domain.ShellName{"cmd"}, list.Shells); diff != "" {
		t.Errorf("Shells mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "failed to record scan") {
		t.Errorf("expected warning in log, got %q", buf.String())
	}
}

func TestListWithoutStrategyIsEmpty(t *testing.T) {
	list := (&Service{}).List(context.Background())
	if !list.Empty() || list.Shells == nil {
		t.Fatalf("expected empty non-nil list, got %#v", list.Shells)
	}
	if list.Strategy != domain.StrategyNone {
		t.Errorf("Strategy = %q, want none", list.Strategy)
	}
}

func TestListNormalizesNilResult(t *testing.T) {
	svc := &Service{Strategy: stubStrategy{name: "posix"}}
	if got := svc.Shells(context.Background()); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestScanDoesNotRecord(t *testing.T) {
	recorder := &stubRecorder{}
	svc := &Service{
		Strategy: stubStrategy{name: "posix", shells: []domain.ShellName{"/bin/sh"}},
		Recorder: recorder,
	}

	list := svc.Scan(context.Background())
	if len(recorder.saved) != 0 {
		t.Fatalf("Scan recorded %d scans, want 0", len(recorder.saved))
	}

	svc.Record(list)
	if len(recorder.saved) != 1 || recorder.saved[0].Count != 1 {
		t.Fatalf("Record saved %+v, want one scan with one shell", recorder.saved)
	}
}

type stubStrategy struct {
	name   string
	shells []domain.ShellName
}

func (s stubStrategy) Name() string { return s.name }

func (s stubStrategy) Discover(context.Context) []domain.ShellName { return s.shells }

type stubRecorder struct {
	saved []domain.ScanRecord
	err   error
}

func (s *stubRecorder) Save(rec domain.ScanRecord) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, rec)
	return nil
}
