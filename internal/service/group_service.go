package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/splitbook/splitbook/internal/models"
	"github.com/splitbook/splitbook/internal/storage"
)

// GroupService manages groups and their rosters.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// CreateGroup creates a group. The creator is always on the roster.
func (s *GroupService) CreateGroup(ctx context.Context, name, creatorID string, memberIDs []string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}

	members := []models.GroupMember{{UserID: creatorID}}
	for _, id := range memberIDs {
		if id != creatorID {
			members = append(members, models.GroupMember{UserID: id})
		}
	}

	for _, m := range members {
		user, err := s.store.GetUserByID(ctx, m.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w: unknown user %s", ErrInvalidInput, m.UserID)
		}
	}

	group := &models.Group{Name: name, CreatedBy: creatorID, Members: members}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "name", name, "error", err)
		return nil, err
	}

	slog.Info("Group created", "group_id", group.ID, "name", name, "members", len(members))
	return s.store.GetGroup(ctx, group.ID)
}

// GetGroup returns the group with its roster. Only members may read it.
func (s *GroupService) GetGroup(ctx context.Context, groupID, callerID string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(callerID) {
		return nil, ErrNotGroupMember
	}
	return group, nil
}

// AddMembers adds users to the group roster. Only members may extend it.
func (s *GroupService) AddMembers(ctx context.Context, groupID, callerID string, userIDs []string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(callerID) {
		return nil, ErrNotGroupMember
	}

	var newIDs []string
	for _, id := range userIDs {
		if group.HasMember(id) {
			continue
		}
		user, err := s.store.GetUserByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("%w: unknown user %s", ErrInvalidInput, id)
		}
		newIDs = append(newIDs, id)
	}

	if len(newIDs) > 0 {
		if err := s.store.AddGroupMembers(ctx, groupID, newIDs); err != nil {
			slog.Error("AddMembers failed", "group_id", groupID, "error", err)
			return nil, err
		}
		slog.Info("Members added", "group_id", groupID, "new_members", newIDs)
	}

	return s.store.GetGroup(ctx, groupID)
}

// ListGroups returns every group the caller belongs to.
func (s *GroupService) ListGroups(ctx context.Context, callerID string) ([]*models.Group, error) {
	return s.store.ListGroupsByUser(ctx, callerID)
}
