package repository

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"suapa/model"
	"suapa/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func GetUserRepo(client *mongo.Client) *UserRepo {
	db := client.Database(utils.GetEnvAsString("MONGO_DB", "suapa"))
	return &UserRepo{
		MongoCollection: db.Collection(utils.GetEnvAsString("USERS_COLLECTION", "users")),
	}
}

func (r *UserRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.UserID == "" || user.Email == "" {
		utils.TrackError("database", "invalid_user_data")
		return errors.New("user ID and email required")
	}

	if _, err := r.MongoCollection.InsertOne(ctx, user); err != nil {
		utils.TrackError("database", "user_creation_failed")
		return errors.New("failed to add user to database")
	}
	return nil
}

func (r *UserRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		log.Println("Error finding user:", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) FindUserByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"google_id": googleID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateLastLogin stamps the login time and the device the login came from.
func (r *UserRepo) UpdateLastLogin(ctx context.Context, userID, device string) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	set := bson.M{"last_login": time.Now()}
	if device != "" {
		set["last_login_device"] = device
	}
	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": set})
	if err != nil {
		utils.TrackError("database", "last_login_update_failed")
	}
	return err
}

func (r *UserRepo) UpdateUser(ctx context.Context, userID string, set bson.M) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": set})
	if err != nil {
		utils.TrackError("database", "user_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}

func (r *UserRepo) Enable2FA(ctx context.Context, userID, secret string) error {
	return r.UpdateUser(ctx, userID, bson.M{
		"two_factor_secret":  secret,
		"two_factor_enabled": true,
	})
}

// SoftDeleteUser flags the profile as deleted. Documents are retained.
func (r *UserRepo) SoftDeleteUser(ctx context.Context, userID string) error {
	return r.UpdateUser(ctx, userID, bson.M{
		"deleted":    true,
		"deleted_at": time.Now(),
	})
}

type ListUsersQuery struct {
	Role   string // "", "user" or "admin"
	Search string // matches display name or email
	Page   int    // 1-based
	Limit  int
}

// searchRegex turns a raw search string into a case-insensitive substring
// match. The input is quoted so regex metacharacters in it match literally.
func searchRegex(search string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
}

// ListUsers pages through non-deleted profiles, newest accounts first.
func (r *UserRepo) ListUsers(ctx context.Context, q ListUsersQuery) ([]*model.User, int64, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	filter := bson.M{"deleted": bson.M{"$ne": true}}
	if q.Role != "" {
		filter["role"] = q.Role
	}
	if q.Search != "" {
		re := searchRegex(q.Search)
		filter["$or"] = bson.A{
			bson.M{"display_name": re},
			bson.M{"email": re},
		}
	}

	total, err := r.MongoCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.TrackError("database", "user_count_failed")
		return nil, 0, err
	}

	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.TrackError("database", "user_list_failed")
		return nil, 0, err
	}

	var users []*model.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepo) CountUsers(ctx context.Context, filter bson.M) (int, error) {
	count, err := r.MongoCollection.CountDocuments(ctx, filter)
	if err != nil {
		utils.TrackError("database", "user_count_failed")
		return 0, err
	}
	return int(count), nil
}

// SyncProfiles walks every profile, normalizes the role against the
// configured admin email, and backfills fields a direct auth signup may
// have skipped. Returns how many documents were updated.
func (r *UserRepo) SyncProfiles(ctx context.Context, adminEmail string) (int, error) {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{})
	if err != nil {
		utils.TrackError("database", "user_sync_failed")
		return 0, err
	}
	defer cursor.Close(ctx)

	updated := 0
	for cursor.Next(ctx) {
		var user model.User
		if err := cursor.Decode(&user); err != nil {
			log.Printf("Skipping undecodable user document: %v", err)
			continue
		}

		set := bson.M{}
		role := model.RoleUser
		if strings.EqualFold(user.Email, adminEmail) {
			role = model.RoleAdmin
		}
		if user.Role != role {
			set["role"] = role
		}
		if user.DisplayName == "" && user.Email != "" {
			set["display_name"] = strings.SplitN(user.Email, "@", 2)[0]
		}
		if user.CreatedAt.IsZero() {
			set["created_at"] = time.Now()
		}
		if len(set) == 0 {
			continue
		}

		set["synced_from_auth"] = true
		set["synced_at"] = time.Now()
		if _, err := r.MongoCollection.UpdateOne(ctx, bson.M{"user_id": user.UserID}, bson.M{"$set": set}); err != nil {
			log.Printf("Error syncing user %s: %v", user.UserID, err)
			continue
		}
		updated++
	}
	return updated, cursor.Err()
}
