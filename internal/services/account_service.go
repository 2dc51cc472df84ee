package services

import (
	"context"
	"fmt"

	"awards_backend/internal/logger"
	"awards_backend/internal/models"
	"awards_backend/internal/repositories"
	"awards_backend/internal/services/dto"
	"awards_backend/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
)

// AccountService implements the account and application workflow on top
// of the flat-file user store. Every mutating operation is one locked
// read-modify-write cycle; a rejected operation never touches the file.
type AccountService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, userID int) (*dto.UserResponse, error)
	CheckCategoryApplied(ctx context.Context, userID int, categorySlug string) (*dto.CheckCategoryResponse, error)
	SaveDraft(ctx context.Context, userID int, data map[string]interface{}) error
	GetDraft(ctx context.Context, userID int) (*dto.DraftResponse, error)
	CompleteRegistration(ctx context.Context, userID int, req *dto.RegistrationRequest) error
	SubmitApplication(ctx context.Context, userID int, req *dto.SubmitApplicationRequest) error
	PendingRegistrations(ctx context.Context) (*dto.PendingResponse, error)
	ReviewRegistration(ctx context.Context, req *dto.ReviewRequest) (*dto.ReviewResponse, error)
}

type AccountServiceImpl struct {
	userRepo *repositories.UserRepository
}

func NewAccountService(userRepo *repositories.UserRepository) AccountService {
	return &AccountServiceImpl{userRepo: userRepo}
}

// Signup creates a new account with the next available id.
func (s *AccountServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var resp *dto.UserResponse
	err = s.userRepo.Update(func(db *models.Database) error {
		if db.FindByEmail(req.Email) != nil {
			return apperrors.ErrEmailAlreadyExists
		}

		user := &models.User{
			ID:                db.NextID(),
			Email:             req.Email,
			Password:          string(hashedPassword),
			Registered:        false,
			Applied:           false,
			AppliedCategories: []string{},
			Submissions:       map[string]models.Submission{},
			Draft:             nil,
		}
		db.Users = append(db.Users, user)

		resp = dto.NewUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "user signed up", "user_id", resp.ID, "email", resp.Email)
	return resp, nil
}

// Login validates credentials and returns the full user view.
func (s *AccountServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	var resp *dto.UserResponse
	err := s.userRepo.View(func(db *models.Database) error {
		user := db.FindByEmail(req.Email)
		if user == nil {
			return apperrors.ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			return apperrors.ErrInvalidCredentials
		}
		resp = dto.NewUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", resp.ID)
	return resp, nil
}

func (s *AccountServiceImpl) GetUser(ctx context.Context, userID int) (*dto.UserResponse, error) {
	var resp *dto.UserResponse
	err := s.userRepo.View(func(db *models.Database) error {
		user := db.FindByID(userID)
		if user == nil {
			return apperrors.ErrUserNotFound
		}
		resp = dto.NewUserResponse(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *AccountServiceImpl) CheckCategoryApplied(ctx context.Context, userID int, categorySlug string) (*dto.CheckCategoryResponse, error) {
	var resp *dto.CheckCategoryResponse
	err := s.userRepo.View(func(db *models.Database) error {
		user := db.FindByID(userID)
		if user == nil {
			return apperrors.ErrUserNotFound
		}
		applied := user.AppliedCategories
		if applied == nil {
			applied = []string{}
		}
		resp = &dto.CheckCategoryResponse{
			HasApplied:        user.HasApplied(categorySlug),
			AppliedCategories: applied,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// SaveDraft overwrites the user's draft wholesale.
func (s *AccountServiceImpl) SaveDraft(ctx context.Context, userID int, data map[string]interface{}) error {
	return s.userRepo.Update(func(db *models.Database) error {
		user := db.FindByID(userID)
		if user == nil {
			return apperrors.ErrUserNotFound
		}
		user.Draft = data
		return nil
	})
}

func (s *AccountServiceImpl) GetDraft(ctx context.Context, userID int) (*dto.DraftResponse, error) {
	var resp *dto.DraftResponse
	err := s.userRepo.View(func(db *models.Database) error {
		user := db.FindByID(userID)
		if user == nil {
			return apperrors.ErrUserNotFound
		}
		resp = &dto.DraftResponse{Draft: user.Draft}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CompleteRegistration records the user's application for one category.
// A user may apply to a given category at most once.
func (s *AccountServiceImpl) CompleteRegistration(ctx context.Context, userID int, req *dto.RegistrationRequest) error {
	status := req.Status
	if status == "" {
		status = models.StatusQualified
	}

	err := s.userRepo.Update(func(db *models.Database) error {
		user := db.FindByID(userID)
		if user == nil {
			return apperrors.ErrUserNotFound
		}
		if user.HasApplied(req.CategorySlug) {
			return apperrors.ErrCategoryAlreadyApplied
		}

		user.AppliedCategories = append(user.AppliedCategories, req.CategorySlug)
		if user.CategoryStatuses == nil {
			user.CategoryStatuses = map[string]models.CategoryStatus{}
		}
		user.CategoryStatuses[req.CategorySlug] = status
		user.Registered = true
		user.RegistrationData = req.Data
		return nil
	})
	if err != nil {
		return err
	}

	logger.CtxInfo(ctx, "registration completed",
		"user_id", userID,
		"category", req.CategorySlug,
		"status", string(status),
	)
	return nil
}

// SubmitApplication upserts the submission record for the category.
// There is deliberately no check that the category was applied to or
// qualified; any slug is accepted, as the legacy behavior requires.
func (s *AccountServiceImpl) SubmitApplication(ctx context.Context, userID int, req *dto.SubmitApplicationRequest) error {
	err := s.userRepo.Update(func(db *models.Database) error {
		user := db.FindByID(userID)
		if user == nil {
			return apperrors.ErrUserNotFound
		}
		if user.Submissions == nil {
			user.Submissions = map[string]models.Submission{}
		}
		user.Submissions[req.CategorySlug] = models.Submission{
			ReferenceNumber: req.ReferenceNumber,
			SubmittedAt:     req.SubmittedAt,
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.CtxInfo(ctx, "application submitted",
		"user_id", userID,
		"category", req.CategorySlug,
		"reference", req.ReferenceNumber,
	)
	return nil
}

// PendingRegistrations lists every (user, category) pair still waiting
// for admin review. The registration payload shown to the admin is read
// from the user's draft under the category slug, which is how the admin
// page has always sourced it.
func (s *AccountServiceImpl) PendingRegistrations(ctx context.Context) (*dto.PendingResponse, error) {
	resp := &dto.PendingResponse{Pending: []dto.PendingRegistration{}}
	err := s.userRepo.View(func(db *models.Database) error {
		for _, user := range db.Users {
			// AppliedCategories keeps document insertion order;
			// CategoryStatuses entries are created in lockstep with it.
			for _, slug := range user.AppliedCategories {
				if user.CategoryStatuses[slug] != models.StatusWaitingApproval {
					continue
				}
				// The draft value is passed through as stored, whatever
				// its shape; only a missing key falls back to an empty
				// object.
				var regData interface{} = map[string]interface{}{}
				if raw, ok := user.Draft[slug]; ok {
					regData = raw
				}
				resp.Pending = append(resp.Pending, dto.PendingRegistration{
					UserID:           user.ID,
					Email:            user.Email,
					CategorySlug:     slug,
					RegistrationData: regData,
					SubmittedAt:      nil,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ReviewRegistration moves a waiting-approval registration to qualified
// (approve) or rejected (reject). Any other source state is refused.
func (s *AccountServiceImpl) ReviewRegistration(ctx context.Context, req *dto.ReviewRequest) (*dto.ReviewResponse, error) {
	if req.Action != "approve" && req.Action != "reject" {
		return nil, apperrors.ErrInvalidReviewAction
	}

	newStatus := models.StatusQualified
	if req.Action == "reject" {
		newStatus = models.StatusRejected
	}

	err := s.userRepo.Update(func(db *models.Database) error {
		user := db.FindByID(req.UserID)
		if user == nil {
			return apperrors.ErrUserNotFound
		}
		current, ok := user.CategoryStatuses[req.CategorySlug]
		if !ok {
			return apperrors.ErrRegistrationNotFound
		}
		if current != models.StatusWaitingApproval {
			return apperrors.ErrNotAwaitingApproval
		}
		user.CategoryStatuses[req.CategorySlug] = newStatus
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "registration reviewed",
		"user_id", req.UserID,
		"category", req.CategorySlug,
		"action", req.Action,
		"new_status", string(newStatus),
	)
	return &dto.ReviewResponse{
		Message:   fmt.Sprintf("Registration %sd successfully", req.Action),
		NewStatus: newStatus,
	}, nil
}
