package actor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagelight/mailroom/log"
	"github.com/stagelight/mailroom/mailbox"
	"github.com/stagelight/mailroom/reactor"
	"github.com/stagelight/mailroom/sysmsg"
)

func init() {
	SetLogger(log.DiscardLogger)
}

// counterBehavior counts "inc" messages and answers "get" calls. It stops
// on any system event.
func counterBehavior(ctx *Context) {
	count := 0
	for {
		d, err := ctx.Receive()
		if err != nil || d.Interrupted() {
			return
		}
		switch msg := d.Msg.(type) {
		case *Call:
			_ = msg.Reply(count)
		case string:
			if msg == "inc" {
				count++
			}
		}
	}
}

func waitDead(t *testing.T, pid *PID) {
	t.Helper()
	require.Eventually(t, func() bool {
		return pid.Mailbox().Dead()
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSpawnSendAsk(t *testing.T) {
	pid := Spawn(counterBehavior)
	defer Stop(pid)

	require.NoError(t, Send(pid, "inc"))
	require.NoError(t, Send(pid, "inc"))

	got, err := Ask(pid, "get")
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestStopPreemptsReceive(t *testing.T) {
	pid := Spawn(counterBehavior)

	Stop(pid)
	waitDead(t, pid)

	require.ErrorIs(t, Send(pid, "inc"), mailbox.ErrDeadRecipient)
	// Notifying a terminated actor stays silent.
	Notify(pid, sysmsg.Shutdown{})
}

func TestSendToTerminatedActor(t *testing.T) {
	pid := Spawn(func(ctx *Context) {})
	waitDead(t, pid)

	require.ErrorIs(t, Send(pid, "anything"), mailbox.ErrDeadRecipient)
}

func TestAskDiscardedOnShutdown(t *testing.T) {
	pid := Spawn(func(ctx *Context) {
		// Consume only the "go" message, then terminate with the ask
		// still queued.
		_, _ = ctx.ReceiveMatch(func(msg any) bool {
			s, ok := msg.(string)
			return ok && s == "go"
		})
	})

	errCh := make(chan error, 1)
	go func() {
		_, err := Ask(pid, "question")
		errCh <- err
	}()

	// Wait for the ask to be queued before releasing the actor.
	require.Eventually(t, func() bool {
		return len(pid.Mailbox().Snapshot()) > 0
	}, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, Send(pid, "go"))

	select {
	case err := <-errCh:
		require.Error(t, err)
		var exit sysmsg.Exit
		require.True(t, errors.As(err, &exit))
		assert.Equal(t, sysmsg.Discarded, exit.Reason)
	case <-time.After(2 * time.Second):
		t.Fatal("asker still blocked after recipient shutdown")
	}
}

func TestDeadletters(t *testing.T) {
	drainDeadletters()

	pid := Spawn(func(ctx *Context) {
		_, _ = ctx.ReceiveMatch(func(msg any) bool {
			s, ok := msg.(string)
			return ok && s == "go"
		})
	})

	require.NoError(t, Send(pid, "orphan"))
	require.NoError(t, Send(pid, "go"))
	waitDead(t, pid)

	letters := Deadletters()
	require.Len(t, letters, 1)
	assert.Equal(t, pid.ID(), letters[0].PID)
	assert.Equal(t, "orphan", letters[0].Msg)
}

func drainDeadletters() {
	for len(Deadletters()) > 0 {
	}
}

func TestRegistry(t *testing.T) {
	pid := Spawn(counterBehavior)
	defer Stop(pid)

	Register("counter", pid)
	got, ok := WhereIs("counter")
	require.True(t, ok)
	assert.Equal(t, pid, got)

	Unregister("counter")
	require.Eventually(t, func() bool {
		_, ok := WhereIs("counter")
		return !ok
	}, 2*time.Second, 5*time.Millisecond)

	_, ok = WhereIs("never-registered")
	assert.False(t, ok)
}

func TestSpawnEvented(t *testing.T) {
	loop := reactor.NewLoop(reactor.WithLogger(log.DiscardLogger))
	defer loop.Stop()

	pid := SpawnEvented(loop, counterBehavior)

	require.NoError(t, Send(pid, "inc"))
	got, err := Ask(pid, "get")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	Stop(pid)
	waitDead(t, pid)
}

func TestPanicShutsMailboxDown(t *testing.T) {
	pid := Spawn(func(ctx *Context) {
		panic("boom")
	})
	waitDead(t, pid)
	require.ErrorIs(t, Send(pid, "anything"), mailbox.ErrDeadRecipient)
}
