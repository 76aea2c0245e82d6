// Package chat implements the copilot auto-reply: a keyword-matched canned
// response delivered after a fixed delay on a background timer. There is no
// model behind it.
package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sender identifies who wrote a message.
type Sender string

const (
	SenderClient  Sender = "CLIENT"
	SenderManager Sender = "MANAGER"
	SenderAI      Sender = "AI"
)

// Message is a single chat entry.
type Message struct {
	ID        string    `json:"id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	replyDefault   = "Gracias. He notificado a su gestor."
	replyDocuments = "Para subir documentos, diríjase a la pestaña 'Mi Solicitud' > Paso 3. Allí verá el checklist obligatorio."
	replyDeadline  = "El plazo medio de resolución para operaciones FOCO es de 3 semanas tras la recepción de toda la documentación."
)

// Reply returns the canned response for a client message. Exported so the
// lookup is testable without timers.
func Reply(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "documento") || strings.Contains(lower, "subir"):
		return replyDocuments
	case strings.Contains(lower, "plazo"):
		return replyDeadline
	default:
		return replyDefault
	}
}

// Greeting is the opening copilot message of a session.
func Greeting() Message {
	return Message{
		ID:        uuid.NewString(),
		Sender:    SenderAI,
		Text:      "¡Hola! Soy tu asistente virtual. ¿En qué puedo ayudarte hoy con tu solicitud?",
		Timestamp: time.Now(),
	}
}

// Replier schedules auto-replies to client messages.
type Replier struct {
	delay time.Duration
}

// NewReplier creates a Replier with the given reply delay.
func NewReplier(delay time.Duration) *Replier {
	return &Replier{delay: delay}
}

// Send records a message and, for client messages, schedules the copilot
// reply on a background timer. The returned channel receives the reply and
// is then closed; for non-client senders it is closed immediately. The
// caller is never blocked.
func (r *Replier) Send(sender Sender, text string) (Message, <-chan Message) {
	msg := Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}

	out := make(chan Message, 1)
	if sender != SenderClient {
		close(out)
		return msg, out
	}

	reply := Reply(text)
	time.AfterFunc(r.delay, func() {
		out <- Message{
			ID:        uuid.NewString(),
			Sender:    SenderAI,
			Text:      reply,
			Timestamp: time.Now(),
		}
		close(out)
		zap.L().Debug("chat: auto-reply delivered", zap.String("in_reply_to", msg.ID))
	})

	return msg, out
}
