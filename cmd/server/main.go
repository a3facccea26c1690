package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/slateboard/slateboard/backend-go/internal/asset"
	"github.com/slateboard/slateboard/backend-go/internal/auth"
	"github.com/slateboard/slateboard/backend-go/internal/board"
	"github.com/slateboard/slateboard/backend-go/internal/canvas"
	"github.com/slateboard/slateboard/backend-go/internal/collab"
	"github.com/slateboard/slateboard/backend-go/internal/config"
	"github.com/slateboard/slateboard/backend-go/internal/db"
	"github.com/slateboard/slateboard/backend-go/internal/db/dbgen"
	"github.com/slateboard/slateboard/backend-go/internal/document"
	"github.com/slateboard/slateboard/backend-go/internal/export"
	mw "github.com/slateboard/slateboard/backend-go/internal/middleware"
	"github.com/slateboard/slateboard/backend-go/internal/typeid"
)

// The playground board lives in memory only and allows anonymous access.
const playgroundBoardID = "board_playground"

// snapshotHistory is how many snapshot versions are kept per board.
const snapshotHistory = 20

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	queries := dbgen.New(pool)

	authService := auth.NewService(queries, cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)

	boardService := board.NewService(queries)
	boardHandler := board.NewHandler(boardService)

	canvasHandler := canvas.NewHandler()

	// Document loader for the collaboration hub
	docLoader := func(boardID string) (*document.BoardDocument, error) {
		if boardID == playgroundBoardID {
			return document.NewSampleDocument(boardID), nil
		}

		// Use a background context since this runs in the hub goroutine
		snap, err := queries.GetLatestSnapshot(context.Background(), boardID)
		if err != nil {
			return nil, err
		}
		var doc document.BoardDocument
		if err := json.Unmarshal(snap.Document, &doc); err != nil {
			return nil, err
		}
		return &doc, nil
	}

	// Document saver for the collaboration hub
	docSaver := func(boardID string, doc *document.BoardDocument) error {
		if boardID == playgroundBoardID {
			return nil
		}

		docJSON, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal document: %w", err)
		}

		// Get current version to increment
		currentSnap, err := queries.GetLatestSnapshot(context.Background(), boardID)
		nextVersion := int32(1)
		if err == nil {
			nextVersion = currentSnap.Version + 1
		}

		_, err = queries.CreateSnapshot(context.Background(), dbgen.CreateSnapshotParams{
			ID:       typeid.NewSnapshotID(),
			BoardID:  boardID,
			Version:  nextVersion,
			Document: docJSON,
		})
		if err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}

		// Keep a bounded history per board.
		if nextVersion > snapshotHistory {
			if err := queries.PruneSnapshots(context.Background(), dbgen.PruneSnapshotsParams{
				BoardID: boardID,
				Version: nextVersion - snapshotHistory,
			}); err != nil {
				slog.Warn("prune snapshots", "board", boardID, "error", err)
			}
		}

		return nil
	}

	hub := collab.NewHub(docLoader, docSaver)
	go hub.Run()

	assetHandler := asset.NewHandler(cfg.AssetDir)
	exportHandler := export.NewHandler(cfg.ExportDir)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS)

	// Auth routes (public)
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Stroke recognition (public — used by playground and authenticated users)
	r.HandleFunc("/ink/recognize", canvasHandler.Recognize).Methods("POST", "OPTIONS")

	// Asset endpoints (public — used by playground and authenticated users)
	r.HandleFunc("/assets/upload", assetHandler.Upload).Methods("POST", "OPTIONS")
	r.PathPrefix("/assets/").Handler(assetHandler.Serve()).Methods("GET")

	// Export endpoint (public — used by playground and authenticated users)
	r.HandleFunc("/export/image", exportHandler.ExportImage).Methods("POST", "OPTIONS")

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authService.AuthMiddleware)

	api.HandleFunc("/me", authHandler.Me).Methods("GET")

	api.HandleFunc("/boards", boardHandler.List).Methods("GET")
	api.HandleFunc("/boards", boardHandler.Create).Methods("POST")
	api.HandleFunc("/boards/{boardId}", boardHandler.Get).Methods("GET")
	api.HandleFunc("/boards/{boardId}", boardHandler.Rename).Methods("PATCH")
	api.HandleFunc("/boards/{boardId}", boardHandler.Delete).Methods("DELETE")
	api.HandleFunc("/boards/{boardId}/invite", boardHandler.Invite).Methods("POST")
	api.HandleFunc("/boards/{boardId}/members", boardHandler.ListMembers).Methods("GET")
	api.HandleFunc("/boards/{boardId}/members/{userId}", boardHandler.RemoveMember).Methods("DELETE")
	api.HandleFunc("/boards/{boardId}/snapshots/latest", boardHandler.GetLatestSnapshot).Methods("GET")
	api.HandleFunc("/boards/{boardId}/settings", boardHandler.UpdateSettings).Methods("PATCH")

	// WebSocket endpoint
	r.HandleFunc("/ws/board/{boardId}", func(w http.ResponseWriter, r *http.Request) {
		handleWebSocket(w, r, hub, authService, queries)
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		// Stop hub first to save all dirty documents
		slog.Info("saving all documents...")
		hub.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func handleWebSocket(w http.ResponseWriter, r *http.Request, hub *collab.Hub, authSvc *auth.Service, queries *dbgen.Queries) {
	vars := mux.Vars(r)
	boardID := vars["boardId"]

	var userID string
	var displayName string

	// Playground board allows anonymous access
	if boardID == playgroundBoardID {
		userID = "anon-" + uuid.New().String()[:8]
		displayName = "Anonymous"
	} else {
		// Auth via query param for real boards
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		var err error
		userID, err = authSvc.ValidateToken(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		// Check membership
		_, err = queries.GetBoardMember(r.Context(), dbgen.GetBoardMemberParams{
			BoardID: boardID,
			UserID:  userID,
		})
		if err != nil {
			http.Error(w, "not a board member", http.StatusForbidden)
			return
		}

		// Get user display name
		user, err := authSvc.GetUser(r.Context(), userID)
		if err != nil {
			http.Error(w, "user not found", http.StatusInternalServerError)
			return
		}
		displayName = user.DisplayName
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"localhost:5173", "localhost:3000"},
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := collab.NewClient(hub, conn, userID, displayName, boardID, clientID)

	hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
