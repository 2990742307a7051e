package repository

import (
	"context"
	"errors"
	"log"

	"suapa/model"
	"suapa/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChatsRepo spans the two chat collections; plain chats and companion-tool
// chats are one logical per-user history.
type ChatsRepo struct {
	Chats     *mongo.Collection
	Companion *mongo.Collection
}

func GetChatsRepo(client *mongo.Client) *ChatsRepo {
	db := client.Database(utils.GetEnvAsString("MONGO_DB", "suapa"))
	return &ChatsRepo{
		Chats:     db.Collection(utils.GetEnvAsString("CHATS_COLLECTION", "chats")),
		Companion: db.Collection(utils.GetEnvAsString("COMPANION_COLLECTION", "companionChats")),
	}
}

func (r *ChatsRepo) InsertChat(ctx context.Context, chat *model.Chat) error {
	timer := utils.TrackDBOperation("insert", "chats")
	defer timer.ObserveDuration()

	if chat.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	if _, err := r.Chats.InsertOne(ctx, chat); err != nil {
		utils.TrackError("database", "chat_creation_failed")
		return err
	}
	utils.TrackChatMessage(model.ChatKindPlain)
	return nil
}

func (r *ChatsRepo) InsertCompanionChat(ctx context.Context, chat *model.CompanionChat) error {
	timer := utils.TrackDBOperation("insert", "companionChats")
	defer timer.ObserveDuration()

	if chat.UserID == "" {
		utils.TrackError("database", "missing_user_id")
		return errors.New("user ID is required")
	}

	if _, err := r.Companion.InsertOne(ctx, chat); err != nil {
		utils.TrackError("database", "companion_creation_failed")
		return err
	}
	utils.TrackChatMessage(model.ChatKindCompanion)
	return nil
}

// GetUserChatEntries returns the merged chat history for a user, newest
// first. Each collection is fetched with a server-side sort when the
// composite index allows it and re-sorted client-side when it does not.
func (r *ChatsRepo) GetUserChatEntries(ctx context.Context, userID string) ([]model.ChatEntry, error) {
	timer := utils.TrackDBOperation("find", "chats")
	defer timer.ObserveDuration()

	var plain []*model.Chat
	if err := findForUser(ctx, r.Chats, userID, &plain); err != nil {
		return nil, err
	}

	var companion []*model.CompanionChat
	if err := findForUser(ctx, r.Companion, userID, &companion); err != nil {
		return nil, err
	}

	entries := make([]model.ChatEntry, 0, len(plain)+len(companion))
	for _, c := range plain {
		entries = append(entries, c.Entry())
	}
	for _, c := range companion {
		entries = append(entries, c.Entry())
	}
	SortChatEntriesDesc(entries)
	return entries, nil
}

func (r *ChatsRepo) DeleteChat(ctx context.Context, chatID, userID string) error {
	timer := utils.TrackDBOperation("delete", "chats")
	defer timer.ObserveDuration()

	result, err := r.Chats.DeleteOne(ctx, bson.M{"_id": chatID, "userId": userID})
	if err != nil {
		utils.TrackError("database", "chat_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("chat not found")
	}
	return nil
}

// findForUser runs the user-filtered query with a timestamp-descending sort.
// If the sorted query fails (typically the composite sort index is missing),
// it reissues the bare filter; callers re-sort in memory.
func findForUser(ctx context.Context, coll *mongo.Collection, userID string, results interface{}) error {
	filter := bson.M{"userId": userID}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := coll.Find(ctx, filter, opts)
	if err == nil {
		if err = cursor.All(ctx, results); err == nil {
			return nil
		}
	}

	log.Printf("Sorted query on %s unavailable, using simple query: %v", coll.Name(), err)
	utils.TrackError("database", "sort_index_fallback")

	cursor, err = coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	return cursor.All(ctx, results)
}
