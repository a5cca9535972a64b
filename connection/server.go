package connection

import (
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	controller "trelloapp/controller/board"
	"trelloapp/services"
	"trelloapp/store"
)

// StartServer wires the store, the board service, and the HTTP routes, then
// blocks serving. Configuration is environment-driven:
//
//	STORE_DRIVER         firestore (default) or memory
//	STORE_ATOMIC_WRITES  "true" runs list/card mutations transactionally
//	CORS_ORIGINS         comma-separated origin allow-list; empty allows all
//	GOOGLE_APPLICATION_CREDENTIALS  service account key for the firestore driver
func StartServer() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found or failed to load")
	}

	st, err := openStore()
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}

	atomicWrites := os.Getenv("STORE_ATOMIC_WRITES") == "true"
	svc := services.NewBoardService(st, atomicWrites)

	router := gin.Default()
	router.Use(corsMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	controller.BoardController(router, svc)

	router.Run()
}

func openStore() (store.Store, error) {
	if os.Getenv("STORE_DRIVER") == "memory" {
		log.Println("Using in-memory document store")
		return store.NewMemoryStore(), nil
	}

	client, err := FBConnection()
	if err != nil {
		return nil, err
	}
	return store.NewFirestoreStore(client), nil
}

func corsMiddleware() gin.HandlerFunc {
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		return cors.Default()
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = strings.Split(origins, ",")
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	return cors.New(cfg)
}
