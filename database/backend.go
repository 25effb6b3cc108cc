package database

import (
	"context"
	"fmt"
	"time"

	"keshwala/config"
	"keshwala/database/repository/docstore"
	"keshwala/database/repository/objectstore"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/messaging"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// Backend holds every hosted-service handle the application talks to. It is
// built once at startup and passed to constructors. A nil handle means the
// service is not configured; gateways built on it report "not available".
type Backend struct {
	Auth      *auth.Client
	Firestore *firestore.Client
	Storage   *storage.Client
	Messaging *messaging.Client
	Identity  *identitytoolkit.Service
	Mongo     *mongo.Client
	Redis     *redis.Client

	// Documents and Files are the stores selected by DOCUMENT_BACKEND and
	// FILE_BACKEND. Either may be nil.
	Documents docstore.Store
	Files     objectstore.Store

	// MemoryFiles is set when FILE_BACKEND=memory so the router can serve it.
	MemoryFiles *objectstore.MemoryStore
}

// Connect constructs the Backend from configuration. Missing configuration
// leaves the matching handle nil; configured services that fail to connect
// are returned as errors.
func Connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Backend, error) {
	b := &Backend{}

	var opts []option.ClientOption
	if cfg.FirebaseCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseCredentialsFile))
	}

	if cfg.FirebaseEnabled() {
		app, err := firebase.NewApp(ctx, &firebase.Config{
			ProjectID:     cfg.FirebaseProjectID,
			StorageBucket: cfg.FirebaseStorageBucket,
		}, opts...)
		if err != nil {
			return nil, fmt.Errorf("firebase: error initializing app: %w", err)
		}
		if b.Auth, err = app.Auth(ctx); err != nil {
			return nil, fmt.Errorf("firebase: error getting Auth client: %w", err)
		}
		if b.Messaging, err = app.Messaging(ctx); err != nil {
			return nil, fmt.Errorf("firebase: error getting Messaging client: %w", err)
		}
		if cfg.DocumentBackend == config.BackendFirestore {
			if cfg.FirebaseDatabaseID != "" {
				b.Firestore, err = firestore.NewClientWithDatabase(ctx, cfg.FirebaseProjectID, cfg.FirebaseDatabaseID, opts...)
			} else {
				b.Firestore, err = app.Firestore(ctx)
			}
			if err != nil {
				return nil, fmt.Errorf("firebase: error getting Firestore client: %w", err)
			}
		}
		if cfg.FileBackend == config.BackendFirebase && cfg.FirebaseStorageBucket != "" {
			if b.Storage, err = storage.NewClient(ctx, opts...); err != nil {
				return nil, fmt.Errorf("firebase: error getting Storage client: %w", err)
			}
		}
		logger.Info("Firebase initialized", zap.String("project", cfg.FirebaseProjectID))
	} else {
		logger.Warn("FIREBASE_PROJECT_ID not set; auth, Firestore and Firebase Storage are not available")
	}

	if cfg.FirebaseAPIKey != "" {
		svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(cfg.FirebaseAPIKey))
		if err != nil {
			return nil, fmt.Errorf("identitytoolkit: %w", err)
		}
		b.Identity = svc
	}

	switch cfg.DocumentBackend {
	case config.BackendFirestore:
		if b.Firestore != nil {
			b.Documents = docstore.NewFirestoreStore(b.Firestore)
		}
	case config.BackendMongo:
		client, err := connectMongo(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		b.Mongo = client
		b.Documents = docstore.NewMongoStore(client.Database(cfg.MongoDatabase))
		logger.Info("Connected to MongoDB successfully", zap.String("database", cfg.MongoDatabase))
	case config.BackendMemory:
		b.Documents = docstore.NewMemoryStore()
		logger.Warn("Using in-memory document store; data is lost on restart")
	}

	switch cfg.FileBackend {
	case config.BackendFirebase:
		if b.Storage != nil {
			b.Files = objectstore.NewFirebaseStore(b.Storage, cfg.FirebaseStorageBucket)
		}
	case config.BackendCloudinary:
		store, err := objectstore.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			return nil, err
		}
		b.Files = store
	case config.BackendMemory:
		b.MemoryFiles = objectstore.NewMemoryStore(cfg.PublicBaseURL + "/files")
		b.Files = b.MemoryFiles
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisSessionDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if _, err := client.Ping(pingCtx).Result(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis (sessions): %w", err)
		}
		b.Redis = client
	}

	return b, nil
}

func connectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Close releases the handles that hold connections.
func (b *Backend) Close(ctx context.Context) {
	if b.Firestore != nil {
		_ = b.Firestore.Close()
	}
	if b.Storage != nil {
		_ = b.Storage.Close()
	}
	if b.Mongo != nil {
		_ = b.Mongo.Disconnect(ctx)
	}
	if b.Redis != nil {
		_ = b.Redis.Close()
	}
}
