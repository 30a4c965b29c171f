package actionlog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/trenirovka/rosterbot/internal/models"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	path    string
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "action_log.json")

	repo, err := NewFile(&FileConfig{Path: s.path})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) entry(offset time.Duration, action string) models.ActionEntry {
	return models.ActionEntry{
		Timestamp: s.testNow.Add(offset),
		ActorID:   42,
		ActorName: "Alice",
		Action:    action,
	}
}

func (s *FileRepositoryTestSuite) TestListMissingFileIsEmpty() {
	entries, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *FileRepositoryTestSuite) TestAppendKeepsChronologicalOrder() {
	s.Require().NoError(s.repo.Append(s.ctx, s.entry(0, "Signed up")))
	s.Require().NoError(s.repo.Append(s.ctx, s.entry(time.Minute, "Marked as paid")))

	entries, err := s.repo.List(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(entries, 2)
	s.Equal("Signed up", entries[0].Action)
	s.Equal("Marked as paid", entries[1].Action)
	s.Equal(s.testNow, entries[0].Timestamp)
	s.Equal(int64(42), entries[0].ActorID)
	s.Equal("Alice", entries[0].ActorName)
}

func (s *FileRepositoryTestSuite) TestAppendAfterCorruptFileStartsOver() {
	s.Require().NoError(os.WriteFile(s.path, []byte("[{broken"), 0o644))

	s.Require().NoError(s.repo.Append(s.ctx, s.entry(0, "Signed up")))

	entries, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("Signed up", entries[0].Action)
}

func (s *FileRepositoryTestSuite) TestPersistedTimestampLayout() {
	s.Require().NoError(s.repo.Append(s.ctx, s.entry(0, "Signed up")))

	data, err := os.ReadFile(s.path)
	s.Require().NoError(err)
	s.Contains(string(data), `"timestamp": "2025-04-05 10:00:00"`)
}
