package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/slateboard/slateboard/backend-go/internal/db/dbgen"
	"github.com/slateboard/slateboard/backend-go/internal/document"
	"github.com/slateboard/slateboard/backend-go/internal/typeid"
)

var (
	ErrNotFound  = errors.New("board not found")
	ErrForbidden = errors.New("forbidden")
	ErrNotMember = errors.New("not a board member")
)

type Service struct {
	queries *dbgen.Queries
}

func NewService(queries *dbgen.Queries) *Service {
	return &Service{queries: queries}
}

type Board struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OwnerID    string `json:"ownerId"`
	Background string `json:"background"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type Member struct {
	UserID      string `json:"userId"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

func (s *Service) Create(ctx context.Context, name, ownerID string) (*Board, error) {
	boardID := typeid.NewBoardID()

	dbBoard, err := s.queries.CreateBoard(ctx, dbgen.CreateBoardParams{
		ID:      boardID,
		Name:    name,
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}

	// Add owner as member
	err = s.queries.AddBoardMember(ctx, dbgen.AddBoardMemberParams{
		BoardID: boardID,
		UserID:  ownerID,
		Role:    dbgen.BoardRoleOwner,
	})
	if err != nil {
		return nil, fmt.Errorf("add owner as member: %w", err)
	}

	// Seed empty document snapshot
	emptyDoc := document.NewEmptyDocument(boardID, name)
	docJSON, err := json.Marshal(emptyDoc)
	if err != nil {
		return nil, fmt.Errorf("marshal empty document: %w", err)
	}

	_, err = s.queries.CreateSnapshot(ctx, dbgen.CreateSnapshotParams{
		ID:       typeid.NewSnapshotID(),
		BoardID:  boardID,
		Version:  1,
		Document: docJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("create initial snapshot: %w", err)
	}

	return dbBoardToBoard(dbBoard), nil
}

func (s *Service) Get(ctx context.Context, boardID, userID string) (*Board, error) {
	if err := s.checkMembership(ctx, boardID, userID); err != nil {
		return nil, err
	}

	dbBoard, err := s.queries.GetBoard(ctx, boardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get board: %w", err)
	}

	return dbBoardToBoard(dbBoard), nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Board, error) {
	dbBoards, err := s.queries.ListBoardsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}

	boards := make([]Board, len(dbBoards))
	for i, b := range dbBoards {
		boards[i] = *dbBoardToBoard(b)
	}

	return boards, nil
}

func (s *Service) Delete(ctx context.Context, boardID, userID string) error {
	dbBoard, err := s.queries.GetBoard(ctx, boardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get board: %w", err)
	}

	if dbBoard.OwnerID != userID {
		return ErrForbidden
	}

	return s.queries.DeleteBoard(ctx, boardID)
}

func (s *Service) Rename(ctx context.Context, boardID, userID, name string) error {
	if err := s.checkMembership(ctx, boardID, userID); err != nil {
		return err
	}

	return s.queries.UpdateBoardName(ctx, dbgen.UpdateBoardNameParams{
		ID:   boardID,
		Name: name,
	})
}

func (s *Service) InviteByEmail(ctx context.Context, boardID, ownerID, inviteeEmail string) error {
	// Verify the requester is the owner
	dbBoard, err := s.queries.GetBoard(ctx, boardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get board: %w", err)
	}

	if dbBoard.OwnerID != ownerID {
		return ErrForbidden
	}

	invitee, err := s.queries.GetUserByEmail(ctx, inviteeEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errors.New("user not found")
		}
		return fmt.Errorf("find user: %w", err)
	}

	return s.queries.AddBoardMember(ctx, dbgen.AddBoardMemberParams{
		BoardID: boardID,
		UserID:  invitee.ID,
		Role:    dbgen.BoardRoleEditor,
	})
}

func (s *Service) ListMembers(ctx context.Context, boardID, userID string) ([]Member, error) {
	if err := s.checkMembership(ctx, boardID, userID); err != nil {
		return nil, err
	}

	dbMembers, err := s.queries.ListBoardMembers(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	members := make([]Member, len(dbMembers))
	for i, m := range dbMembers {
		members[i] = Member{
			UserID:      m.UserID,
			Role:        string(m.Role),
			DisplayName: m.DisplayName,
			Email:       m.Email,
		}
	}

	return members, nil
}

func (s *Service) RemoveMember(ctx context.Context, boardID, ownerID, targetUserID string) error {
	dbBoard, err := s.queries.GetBoard(ctx, boardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get board: %w", err)
	}

	if dbBoard.OwnerID != ownerID {
		return ErrForbidden
	}

	if targetUserID == ownerID {
		return errors.New("cannot remove board owner")
	}

	return s.queries.RemoveBoardMember(ctx, dbgen.RemoveBoardMemberParams{
		BoardID: boardID,
		UserID:  targetUserID,
	})
}

func (s *Service) GetLatestSnapshot(ctx context.Context, boardID, userID string) (json.RawMessage, error) {
	if err := s.checkMembership(ctx, boardID, userID); err != nil {
		return nil, err
	}

	snap, err := s.queries.GetLatestSnapshot(ctx, boardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	return snap.Document, nil
}

// UpdateSettings rewrites the drawing toggles inside the latest board
// document and persists a new snapshot version.
func (s *Service) UpdateSettings(ctx context.Context, boardID, userID string, settings document.Settings) error {
	if err := s.checkMembership(ctx, boardID, userID); err != nil {
		return err
	}

	snap, err := s.queries.GetLatestSnapshot(ctx, boardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get snapshot: %w", err)
	}

	var doc document.BoardDocument
	if err := json.Unmarshal(snap.Document, &doc); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}

	doc.Board.Settings = settings
	docJSON, err := json.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	_, err = s.queries.CreateSnapshot(ctx, dbgen.CreateSnapshotParams{
		ID:       typeid.NewSnapshotID(),
		BoardID:  boardID,
		Version:  snap.Version + 1,
		Document: docJSON,
	})
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}

	return nil
}

func (s *Service) checkMembership(ctx context.Context, boardID, userID string) error {
	_, err := s.queries.GetBoardMember(ctx, dbgen.GetBoardMemberParams{
		BoardID: boardID,
		UserID:  userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotMember
		}
		return fmt.Errorf("check membership: %w", err)
	}
	return nil
}

func dbBoardToBoard(b dbgen.Board) *Board {
	return &Board{
		ID:         b.ID,
		Name:       b.Name,
		OwnerID:    b.OwnerID,
		Background: b.Background,
		CreatedAt:  b.CreatedAt.Time.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:  b.UpdatedAt.Time.Format("2006-01-02T15:04:05Z"),
	}
}
