package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatListener_UnjoinedProject(t *testing.T) {
	l := NewChatListener(6662)
	defer l.Close()

	_, err := l.Read("ghost")
	assert.ErrorIs(t, err, ErrNotJoined)

	err = l.Send("ghost", "alice", "hi")
	assert.ErrorIs(t, err, ErrNotJoined)

	// leaving an unjoined project is a no-op
	l.Leave("ghost")
}

func TestChatListener_JoinRejectsBadAddress(t *testing.T) {
	l := NewChatListener(6662)
	defer l.Close()

	err := l.Join("p1", "not-an-ip")
	require.Error(t, err)
}

func TestChatListener_JoinTwiceIsNoop(t *testing.T) {
	l := NewChatListener(0)
	defer l.Close()

	require.NoError(t, l.Join("p1", "239.255.42.99"))
	require.NoError(t, l.Join("p1", "239.255.42.99"))

	msgs, err := l.Read("p1")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	l.Leave("p1")
	_, err = l.Read("p1")
	assert.ErrorIs(t, err, ErrNotJoined)
}
