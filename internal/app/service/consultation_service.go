package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/pkg/logger"
)

var ErrConsultationNotFound = errors.New("상담 기록을 찾을 수 없습니다")

// ConsultationService 상담 이력 서비스 인터페이스
type ConsultationService interface {
	CreateConsultation(req *CreateConsultationRequest) (*model.Consultation, error)
	GetConsultation(id uint) (*model.Consultation, error)
	GetMemberConsultations(memberID uint) ([]model.Consultation, error)
	UpdateConsultation(id uint, req *UpdateConsultationRequest) (*model.Consultation, error)
	DeleteConsultation(id uint) error
}

// CreateConsultationRequest 상담 등록 요청
type CreateConsultationRequest struct {
	MemberID     uint   `json:"member_id" binding:"required"`
	ConsultDate  string `json:"consult_date"` // YYYY-MM-DD, 생략 시 오늘
	VisitPurpose string `json:"visit_purpose"`
	Referrer     string `json:"referrer"`
	SpecialNotes string `json:"special_notes"`
	Note         string `json:"note"`
}

// UpdateConsultationRequest 상담 수정 요청
type UpdateConsultationRequest struct {
	VisitPurpose *string `json:"visit_purpose"`
	Referrer     *string `json:"referrer"`
	SpecialNotes *string `json:"special_notes"`
	Note         *string `json:"note"`
}

type consultationService struct {
	repo       repository.ConsultationRepository
	memberRepo repository.MemberRepository
}

// NewConsultationService 상담 서비스 생성자
func NewConsultationService(repo repository.ConsultationRepository, memberRepo repository.MemberRepository) ConsultationService {
	return &consultationService{repo: repo, memberRepo: memberRepo}
}

// CreateConsultation 상담 기록 생성 (상담번호 C{날짜}-{일련} 자동 발급)
func (s *consultationService) CreateConsultation(req *CreateConsultationRequest) (*model.Consultation, error) {
	if _, err := s.memberRepo.FindByID(req.MemberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	consultDate := time.Now()
	if req.ConsultDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.ConsultDate); err == nil {
			consultDate = parsed
		}
	}

	count, err := s.repo.CountByDate(consultDate)
	if err != nil {
		return nil, err
	}
	consultNo := fmt.Sprintf("C%s-%04d", consultDate.Format("20060102"), count+1)

	consultation := &model.Consultation{
		ConsultNo:    consultNo,
		MemberID:     req.MemberID,
		ConsultDate:  consultDate,
		VisitPurpose: req.VisitPurpose,
		Referrer:     req.Referrer,
		SpecialNotes: req.SpecialNotes,
		Note:         req.Note,
	}
	if err := s.repo.Create(consultation); err != nil {
		logger.Error("Failed to create consultation", err, map[string]interface{}{
			"consult_no": consultNo,
			"member_id":  req.MemberID,
		})
		return nil, err
	}

	logger.Info("Consultation created", map[string]interface{}{
		"consult_no": consultation.ConsultNo,
		"member_id":  consultation.MemberID,
	})
	return consultation, nil
}

// GetConsultation 상담 기록 조회
func (s *consultationService) GetConsultation(id uint) (*model.Consultation, error) {
	consultation, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}
	return consultation, nil
}

// GetMemberConsultations 회원의 상담 이력 조회
func (s *consultationService) GetMemberConsultations(memberID uint) ([]model.Consultation, error) {
	if _, err := s.memberRepo.FindByID(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return s.repo.FindByMemberID(memberID)
}

// UpdateConsultation 상담 기록 수정
func (s *consultationService) UpdateConsultation(id uint, req *UpdateConsultationRequest) (*model.Consultation, error) {
	consultation, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConsultationNotFound
		}
		return nil, err
	}

	if req.VisitPurpose != nil {
		consultation.VisitPurpose = *req.VisitPurpose
	}
	if req.Referrer != nil {
		consultation.Referrer = *req.Referrer
	}
	if req.SpecialNotes != nil {
		consultation.SpecialNotes = *req.SpecialNotes
	}
	if req.Note != nil {
		consultation.Note = *req.Note
	}

	if err := s.repo.Update(consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

// DeleteConsultation 상담 기록 삭제
func (s *consultationService) DeleteConsultation(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrConsultationNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
