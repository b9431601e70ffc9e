package repository

import (
	"gorm.io/gorm"

	"github.com/elburim/elburim-backend/internal/app/model"
)

// MemberRepository 회원 저장소 인터페이스
type MemberRepository interface {
	Create(member *model.Member) error
	FindByID(id uint) (*model.Member, error)
	FindByMemberNo(memberNo string) (*model.Member, error)
	FindByPhone(phone string) (*model.Member, error)
	Search(keyword string, status *model.MemberStatus, limit, offset int) ([]model.Member, int64, error)
	Update(member *model.Member) error
	Delete(id uint) error
	LastMemberNo() (string, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 회원 저장소 생성자
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create 회원 생성
func (r *memberRepository) Create(member *model.Member) error {
	return r.db.Create(member).Error
}

// FindByID 회원 ID로 조회 (상담/치수/주문서 이력 포함)
func (r *memberRepository) FindByID(id uint) (*model.Member, error) {
	var member model.Member
	err := r.db.
		Preload("Consultations", func(db *gorm.DB) *gorm.DB {
			return db.Order("consult_date DESC")
		}).
		Preload("Measurements", func(db *gorm.DB) *gorm.DB {
			return db.Order("measure_date DESC")
		}).
		Preload("WorkOrders", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_date DESC")
		}).
		First(&member, id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByMemberNo 회원번호로 조회
func (r *memberRepository) FindByMemberNo(memberNo string) (*model.Member, error) {
	var member model.Member
	if err := r.db.Where("member_no = ?", memberNo).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByPhone 전화번호로 조회 (중복 등록 확인용)
func (r *memberRepository) FindByPhone(phone string) (*model.Member, error) {
	var member model.Member
	if err := r.db.Where("phone = ?", phone).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// Search 이름/전화번호/회원번호 부분 일치 검색
func (r *memberRepository) Search(keyword string, status *model.MemberStatus, limit, offset int) ([]model.Member, int64, error) {
	var members []model.Member
	var total int64

	query := r.db.Model(&model.Member{})
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR member_no LIKE ?", like, like, like)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("member_no ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

// Update 회원 정보 수정
func (r *memberRepository) Update(member *model.Member) error {
	return r.db.Save(member).Error
}

// Delete 회원 삭제 (소프트 삭제)
func (r *memberRepository) Delete(id uint) error {
	return r.db.Delete(&model.Member{}, id).Error
}

// LastMemberNo 마지막으로 발급된 회원번호 조회 (없으면 "")
// 소프트 삭제된 회원도 포함해 번호가 재사용되지 않게 한다.
func (r *memberRepository) LastMemberNo() (string, error) {
	var member model.Member
	err := r.db.Unscoped().Order("member_no DESC").First(&member).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return member.MemberNo, nil
}
