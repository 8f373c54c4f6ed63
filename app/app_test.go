package app

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/omegaatt36/renamer/internal/domain"
	"github.com/omegaatt36/renamer/internal/mock"
)

func TestApp_Run(t *testing.T) {
	ops := []domain.RenameOp{{From: "a.txt", To: "file_1.txt"}, {From: "b.txt", To: "file_2.txt"}}

	t.Run("index template dispatches to index plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renamer := mock.NewMockRenamer(ctrl)

		cfg, err := BuildConfig([]string{"file_{id}.txt"}, Flags{Dir: "/work"})
		require.NoError(t, err)

		gomock.InOrder(
			renamer.EXPECT().PlanWithIndex("/work", cfg.Template, cfg.Options).Return(ops, nil),
			renamer.EXPECT().Apply("/work", ops).Return(2, nil),
		)

		require.NoError(t, NewApp(renamer).Run(cfg))
	})

	t.Run("list path dispatches to list plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renamer := mock.NewMockRenamer(ctrl)

		cfg, err := BuildConfig([]string{"owner_{s}.dat", "names.txt"}, Flags{Dir: "/work"})
		require.NoError(t, err)

		renamer.EXPECT().PlanWithList("/work", cfg.Template, "names.txt", cfg.Options).Return(ops, nil)
		renamer.EXPECT().Apply("/work", ops).Return(2, nil)

		require.NoError(t, NewApp(renamer).Run(cfg))
	})

	t.Run("plan failure skips apply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renamer := mock.NewMockRenamer(ctrl)

		cfg, err := BuildConfig([]string{"{s}", "names.txt"}, Flags{})
		require.NoError(t, err)

		mismatch := &domain.CountMismatchError{Lines: 2, Entries: 3}
		renamer.EXPECT().PlanWithList(".", cfg.Template, "names.txt", cfg.Options).Return(nil, mismatch)

		err = NewApp(renamer).Run(cfg)
		assert.ErrorIs(t, err, domain.ErrCountMismatch)
	})

	t.Run("apply failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renamer := mock.NewMockRenamer(ctrl)

		cfg, err := BuildConfig([]string{"{id}"}, Flags{})
		require.NoError(t, err)

		renameErr := &domain.RenameError{From: "b.txt", To: "file_2.txt", Err: errors.New("permission denied")}
		renamer.EXPECT().PlanWithIndex(".", cfg.Template, cfg.Options).Return(ops, nil)
		renamer.EXPECT().Apply(".", ops).Return(1, renameErr)

		err = NewApp(renamer).Run(cfg)
		assert.ErrorIs(t, err, domain.ErrRename)
	})

	t.Run("dry run lists the whole directory for conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renamer := mock.NewMockRenamer(ctrl)
		lister := mock.NewMockLister(ctrl)

		cfg, err := BuildConfig([]string{"{id}.txt"}, Flags{DryRun: true, Match: `\.jpg$`})
		require.NoError(t, err)

		planned := []domain.RenameOp{{From: "a.jpg", To: "1.txt"}}
		renamer.EXPECT().PlanWithIndex(".", cfg.Template, cfg.Options).Return(planned, nil)
		lister.EXPECT().List(".", domain.SortLexical).Return([]string{"1.txt", "a.jpg"}, nil)

		var out bytes.Buffer
		require.NoError(t, NewApp(renamer, WithLister(lister), WithOutput(&out, false)).Run(cfg))
		assert.Equal(t, "a.jpg -> 1.txt (target exists)\n", out.String())
	})

	t.Run("dry run prints plan without applying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renamer := mock.NewMockRenamer(ctrl)

		cfg, err := BuildConfig([]string{"file_{id}.txt"}, Flags{DryRun: true})
		require.NoError(t, err)

		renamer.EXPECT().PlanWithIndex(".", cfg.Template, cfg.Options).Return(ops, nil)

		var out bytes.Buffer
		require.NoError(t, NewApp(renamer, WithOutput(&out, false)).Run(cfg))
		assert.Equal(t, "a.txt -> file_1.txt\nb.txt -> file_2.txt\n", out.String())
	})
}

func TestRenderPlan(t *testing.T) {
	t.Run("marks conflicting targets", func(t *testing.T) {
		var out bytes.Buffer
		err := renderPlan(&out, []domain.RenameOp{{From: "a", To: "b"}, {From: "b", To: "c"}}, nil, false)
		require.NoError(t, err)
		assert.Equal(t, "a -> b (target exists)\nb -> c\n", out.String())
	})

	t.Run("marks targets held by filtered-out entries", func(t *testing.T) {
		var out bytes.Buffer
		ops := []domain.RenameOp{{From: "img_1.jpg", To: "notes.txt"}}
		err := renderPlan(&out, ops, []string{"img_1.jpg", "notes.txt"}, false)
		require.NoError(t, err)
		assert.Equal(t, "img_1.jpg -> notes.txt (target exists)\n", out.String())
	})

	t.Run("styled output keeps the names", func(t *testing.T) {
		var out bytes.Buffer
		err := renderPlan(&out, []domain.RenameOp{{From: "a.txt", To: "file_1.txt"}}, nil, true)
		require.NoError(t, err)
		assert.Contains(t, out.String(), ".txt")
		assert.Contains(t, out.String(), "file_1")
		assert.Contains(t, out.String(), "->")
	})
}
