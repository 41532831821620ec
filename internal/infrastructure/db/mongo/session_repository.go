package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitclub/club-api/internal/core/domain"
)

const collectionSessions = "sessions"

// SessionRepository persists class sessions. The roster (participant and
// absentee ids) is embedded in the session document, so a Save replaces the
// session and its roster in a single write.
type SessionRepository struct {
	col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{col: db.Collection(collectionSessions)}
}

// Save inserts the session when it has no id yet, otherwise replaces the
// stored document. Replacement is guarded by the version the caller read:
// when another writer got there first the filter matches nothing and
// domain.ErrSessionConflict is returned.
func (r *SessionRepository) Save(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	if session.ID == "" {
		session.ID = uuid.NewString()
		session.Version = 1
		session.CreatedAt = now
		session.UpdatedAt = now
		if _, err := r.col.InsertOne(ctx, session); err != nil {
			return nil, fmt.Errorf("insert session: %w", err)
		}
		return session, nil
	}

	previousVersion := session.Version
	session.Version++
	session.UpdatedAt = now

	filter := bson.M{"_id": session.ID, "version": previousVersion}
	res, err := r.col.ReplaceOne(ctx, filter, session)
	if err != nil {
		session.Version = previousVersion
		return nil, fmt.Errorf("replace session: %w", err)
	}
	if res.MatchedCount == 0 {
		session.Version = previousVersion
		// Distinguish a stale version from a deleted session.
		n, countErr := r.col.CountDocuments(ctx, bson.M{"_id": session.ID}, options.Count().SetLimit(1))
		if countErr != nil {
			return nil, fmt.Errorf("check session existence: %w", countErr)
		}
		if n == 0 {
			return nil, domain.ErrSessionNotFound
		}
		return nil, domain.ErrSessionConflict
	}
	return session, nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Session
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return &s, nil
}

// DeleteByID removes the session. Deleting a session that does not exist is
// not an error.
func (r *SessionRepository) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindByTrainerID(ctx context.Context, trainerID string) ([]*domain.Session, error) {
	return r.findMany(ctx, bson.M{"trainer_id": trainerID})
}

// FindByParticipant queries the embedded roster array, so membership lookups
// never walk back from the user side.
func (r *SessionRepository) FindByParticipant(ctx context.Context, userID string) ([]*domain.Session, error) {
	return r.findMany(ctx, bson.M{"participant_ids": userID})
}

func (r *SessionRepository) FindAllOrderedByDateAndTime(ctx context.Context) ([]*domain.Session, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *SessionRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "start_time", Value: 1},
	})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find sessions: %w", err)
	}
	defer cur.Close(ctx)

	var sessions []*domain.Session
	for cur.Next(ctx) {
		var s domain.Session
		if err := cur.Decode(&s); err != nil {
			return nil, fmt.Errorf("decode session: %w", err)
		}
		sessions = append(sessions, &s)
	}
	return sessions, cur.Err()
}

// EnsureIndexes creates the indexes backing the schedule and roster queries.
func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}}},
		{Keys: bson.D{{Key: "trainer_id", Value: 1}}},
		{Keys: bson.D{{Key: "participant_ids", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
