package services

import (
	"errors"
	"strings"
	"time"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/repository"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrBadCredentials = errors.New("invalid email or password")

type AuthService struct {
	Repo      *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, JWTSecret: secret, JWTTTL: ttl}
}

type RegisterReq struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthRes struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// Register creates the account with the CUSTOMER role.
func (s *AuthService) Register(req *RegisterReq) (*AuthRes, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer, err := s.Repo.GetRoleByName(entity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	u := entity.User{
		Email:       email,
		Password:    string(hash),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Roles:       []*entity.Role{customer},
	}
	if err := s.Repo.Create(&u); err != nil {
		return nil, err
	}

	return s.issue(&u)
}

func (s *AuthService) Login(req *LoginReq) (*AuthRes, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return nil, ErrBadCredentials
	}

	return s.issue(u)
}

func (s *AuthService) issue(u *entity.User) (*AuthRes, error) {
	token, err := utils.GenerateToken(u.ID, u.RoleSet().Strings(), s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &AuthRes{Token: token, User: u}, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	return s.Repo.GetByID(userID)
}

type UpdateMeReq struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
}

func (s *AuthService) UpdateMe(userID uint, req *UpdateMeReq) (*entity.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		u.PhoneNumber = *req.PhoneNumber
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}
