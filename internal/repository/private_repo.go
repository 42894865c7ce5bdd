package repository

import (
	"context"

	"github.com/oggyb/barchat/internal/docstore"
	"github.com/oggyb/barchat/internal/model"
)

// PrivateMessageRepository stores chats between matched patrons, keyed by
// model.ChatID.
type PrivateMessageRepository struct {
	*Collection[model.PrivateMessage]
}

func NewPrivateMessageRepository(store docstore.Store) *PrivateMessageRepository {
	return &PrivateMessageRepository{Collection: NewCollection[model.PrivateMessage](store, model.CollectionPrivateMessages)}
}

// ChatQuery selects one conversation in creation order.
func ChatQuery(chatID string) docstore.Query {
	return docstore.Where("chatId", docstore.OpEq, chatID)
}

// Conversation returns the messages between a and b, oldest first. Both
// argument orders resolve to the same chat.
func (r *PrivateMessageRepository) Conversation(ctx context.Context, a, b string) ([]Entry[model.PrivateMessage], error) {
	return r.Find(ctx, ChatQuery(model.ChatID(a, b)))
}

// Send stores pm under the chat id of its two participants.
func (r *PrivateMessageRepository) Send(ctx context.Context, pm model.PrivateMessage) (string, error) {
	pm.ChatID = model.ChatID(pm.From, pm.To)
	return r.Append(ctx, pm)
}
