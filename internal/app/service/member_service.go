package service

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/pkg/logger"
)

var (
	ErrMemberNotFound    = errors.New("회원을 찾을 수 없습니다")
	ErrMemberPhoneExists = errors.New("이미 등록된 전화번호입니다")
	ErrMemberNameEmpty   = errors.New("회원 이름은 필수입니다")
)

var nonDigitRe = regexp.MustCompile(`\D`)

// MemberService 회원 서비스 인터페이스
type MemberService interface {
	CreateMember(req *CreateMemberRequest) (*model.Member, error)
	GetMember(id uint) (*model.Member, error)
	GetMemberByNo(memberNo string) (*model.Member, error)
	SearchMembers(keyword string, status *model.MemberStatus, page, pageSize int) ([]model.Member, int64, error)
	UpdateMember(id uint, req *UpdateMemberRequest) (*model.Member, error)
	DeleteMember(id uint) error
}

// CreateMemberRequest 회원 등록 요청
type CreateMemberRequest struct {
	Name       string `json:"name" binding:"required"`
	BirthDate  string `json:"birth_date"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Job        string `json:"job"`
	FirstVisit string `json:"first_visit"` // YYYY-MM-DD, 생략 시 오늘
	Note       string `json:"note"`
}

// UpdateMemberRequest 회원 수정 요청 (nil 필드는 건드리지 않는다)
type UpdateMemberRequest struct {
	Name      *string              `json:"name"`
	BirthDate *string              `json:"birth_date"`
	Phone     *string              `json:"phone"`
	Address   *string              `json:"address"`
	Job       *string              `json:"job"`
	Note      *string              `json:"note"`
	Status    *model.MemberStatus  `json:"status"`
}

type memberService struct {
	repo repository.MemberRepository
}

// NewMemberService 회원 서비스 생성자
func NewMemberService(repo repository.MemberRepository) MemberService {
	return &memberService{repo: repo}
}

// NormalizePhone 전화번호를 010-0000-0000 꼴로 정리한다.
// 서울 지역번호(02)는 두 자리라 따로 자른다.
// 자리수가 맞지 않으면 숫자만 남긴 문자열을 그대로 쓴다.
func NormalizePhone(raw string) string {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	seoul := strings.HasPrefix(digits, "02")
	switch len(digits) {
	case 11:
		return digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	case 10:
		if seoul {
			return digits[:2] + "-" + digits[2:6] + "-" + digits[6:]
		}
		return digits[:3] + "-" + digits[3:6] + "-" + digits[6:]
	case 9:
		if seoul {
			return digits[:2] + "-" + digits[2:5] + "-" + digits[5:]
		}
		return digits
	default:
		return digits
	}
}

// nextMemberNo 마지막 회원번호 다음 번호 (M0001 형식)
func (s *memberService) nextMemberNo() (string, error) {
	last, err := s.repo.LastMemberNo()
	if err != nil {
		return "", err
	}
	if last == "" {
		return "M0001", nil
	}
	n, err := strconv.Atoi(strings.TrimPrefix(last, "M"))
	if err != nil {
		return "", fmt.Errorf("malformed member number %q: %w", last, err)
	}
	return fmt.Sprintf("M%04d", n+1), nil
}

// CreateMember 회원 등록 (회원번호 자동 발급 + 전화번호 중복 확인)
func (s *memberService) CreateMember(req *CreateMemberRequest) (*model.Member, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrMemberNameEmpty
	}

	phone := NormalizePhone(req.Phone)
	if phone != "" {
		if _, err := s.repo.FindByPhone(phone); err == nil {
			return nil, ErrMemberPhoneExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	memberNo, err := s.nextMemberNo()
	if err != nil {
		logger.Error("Failed to issue member number", err)
		return nil, err
	}

	firstVisit := time.Now()
	if req.FirstVisit != "" {
		if parsed, err := time.Parse("2006-01-02", req.FirstVisit); err == nil {
			firstVisit = parsed
		}
	}

	member := &model.Member{
		MemberNo:   memberNo,
		Name:       strings.TrimSpace(req.Name),
		BirthDate:  req.BirthDate,
		Phone:      phone,
		Address:    req.Address,
		Job:        req.Job,
		FirstVisit: firstVisit,
		Note:       req.Note,
		Status:     model.MemberStatusActive,
	}
	if err := s.repo.Create(member); err != nil {
		logger.Error("Failed to create member", err, map[string]interface{}{
			"member_no": memberNo,
		})
		return nil, err
	}

	logger.Info("Member created", map[string]interface{}{
		"member_no": member.MemberNo,
		"name":      member.Name,
	})
	return member, nil
}

// GetMember 회원 상세 조회 (이력 포함)
func (s *memberService) GetMember(id uint) (*model.Member, error) {
	member, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// GetMemberByNo 회원번호로 조회
func (s *memberService) GetMemberByNo(memberNo string) (*model.Member, error) {
	member, err := s.repo.FindByMemberNo(memberNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// SearchMembers 회원 검색 (페이지네이션)
func (s *memberService) SearchMembers(keyword string, status *model.MemberStatus, page, pageSize int) ([]model.Member, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.repo.Search(keyword, status, pageSize, offset)
}

// UpdateMember 회원 정보 수정
func (s *memberService) UpdateMember(id uint, req *UpdateMemberRequest) (*model.Member, error) {
	member, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrMemberNameEmpty
		}
		member.Name = strings.TrimSpace(*req.Name)
	}
	if req.BirthDate != nil {
		member.BirthDate = *req.BirthDate
	}
	if req.Phone != nil {
		phone := NormalizePhone(*req.Phone)
		if phone != "" && phone != member.Phone {
			if other, err := s.repo.FindByPhone(phone); err == nil && other.ID != member.ID {
				return nil, ErrMemberPhoneExists
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		member.Phone = phone
	}
	if req.Address != nil {
		member.Address = *req.Address
	}
	if req.Job != nil {
		member.Job = *req.Job
	}
	if req.Note != nil {
		member.Note = *req.Note
	}
	if req.Status != nil {
		member.Status = *req.Status
	}

	if err := s.repo.Update(member); err != nil {
		return nil, err
	}
	return member, nil
}

// DeleteMember 회원 삭제
func (s *memberService) DeleteMember(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
