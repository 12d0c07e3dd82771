package server

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/polithane/polithane/internal/domain"
	apperrors "github.com/polithane/polithane/internal/errors"
	"github.com/polithane/polithane/internal/scoring"
)

type actorRequest struct {
	Role     domain.Role `json:"role"`
	PartyID  string      `json:"party_id"`
	Verified bool        `json:"verified"`
}

func (a actorRequest) validate() (domain.Actor, error) {
	if !domain.ValidRole(a.Role) {
		return domain.Actor{}, apperrors.ValidationError("unknown actor role").WithContext("role", string(a.Role))
	}
	return domain.Actor{Role: a.Role, PartyID: a.PartyID, Verified: a.Verified}, nil
}

type ingestEventRequest struct {
	ContentID uuid.UUID         `json:"content_id"`
	Action    domain.ActionKind `json:"action"`
	Actor     actorRequest      `json:"actor"`
}

func (s *Server) handleIngestEvent(c echo.Context) error {
	var req ingestEventRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	if req.ContentID == uuid.Nil {
		return apperrors.ValidationError("content_id is required")
	}
	if !domain.ValidActionKind(req.Action) {
		return apperrors.ValidationError("unknown action kind").WithContext("action", string(req.Action))
	}
	actor, err := req.Actor.validate()
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	content, err := s.contents.GetByID(ctx, req.ContentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.NotFoundError("content not found").WithContext("content_id", req.ContentID.String())
		}
		return apperrors.InternalError("failed to load content", err)
	}

	// The owner's interaction view comes from the author profile. Unknown
	// authors degrade to a zero actor and score through the fallback rule.
	var owner domain.Actor
	profile, err := s.profiles.GetByUserID(ctx, content.AuthorID)
	if err != nil {
		return apperrors.InternalError("failed to load author profile", err)
	}
	if profile != nil {
		owner = profile.Actor()
	}

	ev := domain.InteractionEvent{
		Actor:   actor,
		Owner:   owner,
		Content: *content,
		Action:  req.Action,
	}
	points := scoring.ScoreInteraction(ev)
	s.engine.ProcessEvent(ev)

	if err := c.JSON(202, map[string]any{
		"content_id": content.ID,
		"action":     req.Action,
		"points":     points,
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

type createContentRequest struct {
	AuthorID      uuid.UUID            `json:"author_id"`
	ContentType   domain.ContentType   `json:"content_type"`
	TopicCategory domain.TopicCategory `json:"topic_category"`
	Sentiment     domain.Sentiment     `json:"sentiment"`
	TensionLevel  float64              `json:"tension_level"`
	IsRepost      bool                 `json:"is_repost"`
}

func (s *Server) handleCreateContent(c echo.Context) error {
	var req createContentRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	if req.AuthorID == uuid.Nil {
		return apperrors.ValidationError("author_id is required")
	}
	if !domain.ValidContentType(req.ContentType) {
		return apperrors.ValidationError("unknown content type").WithContext("content_type", string(req.ContentType))
	}
	if !domain.ValidTopicCategory(req.TopicCategory) {
		return apperrors.ValidationError("unknown topic category").WithContext("topic_category", string(req.TopicCategory))
	}
	if req.Sentiment == "" {
		req.Sentiment = domain.SentimentNeutral
	}
	if !domain.ValidSentiment(req.Sentiment) {
		return apperrors.ValidationError("unknown sentiment").WithContext("sentiment", string(req.Sentiment))
	}

	content, err := s.contents.Create(c.Request().Context(), &domain.ContentItem{
		AuthorID:      req.AuthorID,
		ContentType:   req.ContentType,
		TopicCategory: req.TopicCategory,
		Sentiment:     req.Sentiment,
		TensionLevel:  req.TensionLevel,
		IsRepost:      req.IsRepost,
	})
	if err != nil {
		return apperrors.InternalError("failed to create content", err)
	}

	slog.InfoContext(c.Request().Context(), "Content registered",
		"content_id", content.ID, "author_id", content.AuthorID, "content_type", content.ContentType)

	if err := c.JSON(201, content); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

type upsertProfileRequest struct {
	Role                 domain.Role `json:"role"`
	PartyID              string      `json:"party_id"`
	Verified             bool        `json:"verified"`
	FollowerCount        int64       `json:"follower_count"`
	Occupation           string      `json:"occupation"`
	Province             string      `json:"province"`
	RecentEngagementAvg  float64     `json:"recent_engagement_avg"`
	OriginalContentRatio float64     `json:"original_content_ratio"`
	MessageActivity      float64     `json:"message_activity"`
}

func (s *Server) handleUpsertProfile(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid user ID").WithContext("id", c.Param("id"))
	}

	var req upsertProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	if !domain.ValidRole(req.Role) {
		return apperrors.ValidationError("unknown actor role").WithContext("role", string(req.Role))
	}
	if req.FollowerCount < 0 {
		return apperrors.ValidationError("follower_count must be non-negative")
	}
	if req.OriginalContentRatio < 0 || req.OriginalContentRatio > 1 {
		return apperrors.ValidationError("original_content_ratio must be within [0,1]")
	}

	profile, err := s.profiles.Upsert(c.Request().Context(), &domain.AuthorProfile{
		UserID:               userID,
		Role:                 req.Role,
		PartyID:              req.PartyID,
		Verified:             req.Verified,
		FollowerCount:        req.FollowerCount,
		Occupation:           req.Occupation,
		Province:             req.Province,
		RecentEngagementAvg:  req.RecentEngagementAvg,
		OriginalContentRatio: req.OriginalContentRatio,
		MessageActivity:      req.MessageActivity,
	})
	if err != nil {
		return apperrors.InternalError("failed to upsert profile", err)
	}

	if err := c.JSON(200, profile); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleGetContentScore(c echo.Context) error {
	contentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid content ID").WithContext("id", c.Param("id"))
	}

	breakdown, err := s.engine.Recompute(c.Request().Context(), contentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.NotFoundError("content not found").WithContext("content_id", contentID.String())
		}
		return apperrors.InternalError("failed to compute score", err)
	}

	if err := c.JSON(200, map[string]any{
		"content_id": contentID,
		"breakdown":  breakdown,
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}

func (s *Server) handleRefreshUserScore(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid user ID").WithContext("id", c.Param("id"))
	}

	score, err := s.engine.RefreshUserScore(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, scoring.ErrProfileNotFound) {
			return apperrors.NotFoundError("author profile not found").WithContext("user_id", userID.String())
		}
		return apperrors.InternalError("failed to refresh user score", err)
	}

	if err := c.JSON(200, map[string]any{
		"user_id": userID,
		"score":   score,
	}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
