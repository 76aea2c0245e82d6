package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReply(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"documents keyword", "¿Dónde puedo ver los documentos pendientes?", replyDocuments},
		{"upload keyword", "Necesito subir el informe de auditoría", replyDocuments},
		{"deadline keyword", "¿Cuál es el plazo de resolución?", replyDeadline},
		{"case insensitive", "PLAZO estimado", replyDeadline},
		{"anything else", "Hola, tengo una duda general", replyDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reply(tt.text))
		})
	}
}

func TestGreeting(t *testing.T) {
	g := Greeting()
	assert.Equal(t, SenderAI, g.Sender)
	assert.NotEmpty(t, g.ID)
	assert.NotEmpty(t, g.Text)
}

func TestReplierSendClient(t *testing.T) {
	r := NewReplier(10 * time.Millisecond)

	msg, replies := r.Send(SenderClient, "¿Cuál es el plazo?")
	assert.Equal(t, SenderClient, msg.Sender)
	assert.NotEmpty(t, msg.ID)

	select {
	case reply, ok := <-replies:
		require.True(t, ok)
		assert.Equal(t, SenderAI, reply.Sender)
		assert.Equal(t, replyDeadline, reply.Text)
		assert.NotEqual(t, msg.ID, reply.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("no reply delivered")
	}

	// Channel closes after the single reply.
	_, ok := <-replies
	assert.False(t, ok)
}

func TestReplierSendManager(t *testing.T) {
	r := NewReplier(time.Hour)

	msg, replies := r.Send(SenderManager, "Revisado, adelante.")
	assert.Equal(t, SenderManager, msg.Sender)

	// Non-client messages never get an auto-reply; the channel is closed
	// immediately.
	_, ok := <-replies
	assert.False(t, ok)
}
