// Package audit keeps a local git history of the report archive. Every save
// and delete commits a fresh archive.json snapshot, so any past state of the
// archive can be recovered even after an accidental delete.
package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"restops/engine/internal/model"
)

const snapshotFile = "archive.json"

// CommitInfo describes one recorded archive snapshot.
type CommitInfo struct {
	Hash      string
	Message   string
	CreatedAt time.Time
}

// Trail is the git-backed audit log.
type Trail struct {
	dir string
	mu  sync.Mutex
}

// New creates a Trail rooted at dir. Call Ensure before the first Record.
func New(dir string) *Trail {
	return &Trail{dir: dir}
}

// Ensure initializes the repository with an empty snapshot if it does not
// exist yet.
func (t *Trail) Ensure() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := os.Stat(t.dir); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat audit dir: %w", err)
	}

	if err := os.MkdirAll(t.dir, 0o755); err != nil {
		return fmt.Errorf("create audit dir: %w", err)
	}

	repo, err := git.PlainInit(t.dir, false)
	if err != nil {
		return fmt.Errorf("init audit repo: %w", err)
	}

	hash, err := t.writeAndCommit(repo, nil, "Initialize archive audit trail")
	if err != nil {
		return err
	}
	if err := repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewBranchReferenceName("main"), hash)); err != nil {
		return fmt.Errorf("set main branch ref: %w", err)
	}
	if err := repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("main"))); err != nil {
		return fmt.Errorf("set HEAD to main: %w", err)
	}
	return nil
}

// Record commits the current archive contents under a message describing the
// action that changed it.
func (t *Trail) Record(action string, reports []model.Report) (CommitInfo, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	repo, err := git.PlainOpen(t.dir)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("open audit repo: %w", err)
	}

	hash, err := t.writeAndCommit(repo, reports, action)
	if err != nil {
		return CommitInfo{}, err
	}
	commitObj, err := repo.CommitObject(hash)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("read commit object: %w", err)
	}
	return toCommitInfo(commitObj), nil
}

// History lists recorded snapshots, newest first, up to limit (0 = all).
func (t *Trail) History(limit int) ([]CommitInfo, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	repo, err := git.PlainOpen(t.dir)
	if err != nil {
		return nil, fmt.Errorf("open audit repo: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve head: %w", err)
	}
	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	var items []CommitInfo
	err = iter.ForEach(func(commitObj *object.Commit) error {
		items = append(items, toCommitInfo(commitObj))
		if limit > 0 && len(items) >= limit {
			return errStopIteration
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopIteration) {
		return nil, fmt.Errorf("iterate log: %w", err)
	}
	return items, nil
}

var errStopIteration = errors.New("stop iteration")

func (t *Trail) writeAndCommit(repo *git.Repository, reports []model.Report, message string) (plumbing.Hash, error) {
	worktree, err := repo.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("open worktree: %w", err)
	}

	if reports == nil {
		reports = []model.Report{}
	}
	payload, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(filepath.Join(t.dir, snapshotFile), append(payload, '\n'), 0o644); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("write snapshot: %w", err)
	}
	if _, err := worktree.Add(snapshotFile); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("git add snapshot: %w", err)
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{
		AllowEmptyCommits: true,
		Author: &object.Signature{
			Name:  "RestOps",
			Email: "restops@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("commit snapshot: %w", err)
	}
	return hash, nil
}

func toCommitInfo(commitObj *object.Commit) CommitInfo {
	return CommitInfo{
		Hash:      commitObj.Hash.String()[:7],
		Message:   commitObj.Message,
		CreatedAt: commitObj.Author.When,
	}
}
