package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thewilloftheshadow/bun-deps/cmd/bun-deps/commands"
	"github.com/thewilloftheshadow/bun-deps/internal/app"
	"github.com/thewilloftheshadow/bun-deps/internal/build"
)

type mockApp struct {
	whyFunc   func(ctx context.Context, targets []string) error
	auditFunc func(ctx context.Context, opts app.AuditOptions) error
}

func (m *mockApp) Why(ctx context.Context, targets []string) error {
	if m.whyFunc != nil {
		return m.whyFunc(ctx, targets)
	}
	return nil
}

func (m *mockApp) Audit(ctx context.Context, opts app.AuditOptions) error {
	if m.auditFunc != nil {
		return m.auditFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Why(t *testing.T) {
	t.Run("passes targets through", func(t *testing.T) {
		var capturedTargets []string
		mock := &mockApp{
			whyFunc: func(_ context.Context, targets []string) error {
				capturedTargets = targets
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"why", "left-pad", "lodash"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"left-pad", "lodash"}, capturedTargets)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			whyFunc: func(_ context.Context, _ []string) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"why", "left-pad"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no packages provided", func(t *testing.T) {
		mock := &mockApp{
			whyFunc: func(_ context.Context, _ []string) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"why"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Audit(t *testing.T) {
	t.Run("wires no-cache flag", func(t *testing.T) {
		var capturedOpts app.AuditOptions
		mock := &mockApp{
			auditFunc: func(_ context.Context, opts app.AuditOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"audit", "--no-cache"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, capturedOpts.NoCache)
	})

	t.Run("defaults to cached responses", func(t *testing.T) {
		var capturedOpts app.AuditOptions
		mock := &mockApp{
			auditFunc: func(_ context.Context, opts app.AuditOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"audit"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.False(t, capturedOpts.NoCache)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
