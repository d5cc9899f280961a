package abort

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerStartsClean(t *testing.T) {
	ctl := NewController(context.Background())
	defer ctl.Release()

	assert.False(t, ctl.Aborted())
	select {
	case <-ctl.Signal().Done():
		t.Fatal("signal tripped before abort")
	default:
	}
}

func TestAbort(t *testing.T) {
	ctl := NewController(context.Background())
	ctl.Abort()

	assert.True(t, ctl.Aborted())
	select {
	case <-ctl.Signal().Done():
	default:
		t.Fatal("signal not observable after abort")
	}

	// single-shot: a second abort changes nothing
	ctl.Abort()
	assert.True(t, ctl.Aborted())
}

func TestParentCancelTripsSignal(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctl := NewController(parent)
	defer ctl.Release()

	require.False(t, ctl.Aborted())
	cancel()
	<-ctl.Signal().Done()
	assert.True(t, ctl.Aborted())
}

func TestNilParent(t *testing.T) {
	ctl := NewController(nil)
	defer ctl.Release()
	assert.False(t, ctl.Aborted())
}
