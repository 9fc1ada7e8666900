package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/yumeno/kokoro/internal/config"
	"github.com/yumeno/kokoro/internal/emotion"
	"github.com/yumeno/kokoro/internal/growth"
	"github.com/yumeno/kokoro/internal/history"
	"github.com/yumeno/kokoro/internal/store"
)

// app bundles the loaded config, the open database, and the in-memory
// stores every command works against.
type app struct {
	cfg      *config.Config
	db       *store.DB
	history  *history.Store
	growth   *growth.Tracker
	lexicon  emotion.Lexicon
	analyzer *emotion.CachedAnalyzer
}

// openApp loads config, opens the database, and hydrates the stores.
// Corrupted persisted state falls back to built-in defaults; only a
// lexicon corruption gets a stderr notice since it changes scoring.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	items, err := db.LoadHistory(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	hist := history.NewStore(cfg.History.MaxRetained)
	hist.Replace(items)

	lexicon, corrupt := db.LoadLexicon(ctx)
	if corrupt {
		fmt.Fprintln(os.Stderr, "Notice: stored lexicon was invalid, using the built-in default")
	}

	return &app{
		cfg:      cfg,
		db:       db,
		history:  hist,
		growth:   growth.NewTracker(db.LoadGrowth(ctx), cfg.Growth.PointsPerLevel),
		lexicon:  lexicon,
		analyzer: emotion.NewCachedAnalyzer(emotion.NewAnalyzer(), cfg.Analysis.CacheTTL()),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// analyze scores text with the active lexicon and configured flags.
func (a *app) analyze(text string) *emotion.Result {
	return a.analyzer.Analyze(text, a.lexicon, a.cfg.Analysis.RelationBoost)
}

// commit appends one analysis to history, persists the list, and feeds
// the growth tracker. A duplicate is discarded silently, per the
// retention contract, and reported to the caller.
func (a *app) commit(ctx context.Context, text string, res *emotion.Result) (history.Item, bool, error) {
	item := history.NewItem(time.Now(), text, res, a.lexicon.Fingerprint())
	if err := a.history.Append(item); err != nil {
		if errors.Is(err, history.ErrDuplicate) {
			return item, true, nil
		}
		return item, false, err
	}
	if err := a.db.SaveHistory(ctx, a.history.Items()); err != nil {
		return item, false, err
	}
	a.growth.Record(item.Normalized)
	if err := a.db.SaveGrowth(ctx, a.growth.State()); err != nil {
		return item, false, err
	}
	return item, false, nil
}

// newCommitter wires the debounce state machine to the commit path.
// Commit failures surface on stderr; the session keeps going.
func (a *app) newCommitter(ctx context.Context) *history.Committer {
	return history.NewCommitter(a.cfg.History.Debounce(), a.cfg.History.MinCommitChars, func(text string) {
		res := a.analyze(text)
		item, dup, err := a.commit(ctx, text, res)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "commit failed: %v\n", err)
		case dup:
			fmt.Fprintln(os.Stderr, "(duplicate, not saved)")
		default:
			fmt.Fprintf(os.Stderr, "saved %s\n", item.ID)
		}
	})
}

// saveHistory persists the current list, used after mutations that
// bypass commit (pin, delete, clear, import).
func (a *app) saveHistory(ctx context.Context) error {
	return a.db.SaveHistory(ctx, a.history.Items())
}
