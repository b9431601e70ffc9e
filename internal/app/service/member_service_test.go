package service

import (
	"testing"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMemberServiceTest(t *testing.T) (*gorm.DB, MemberService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	svc := NewMemberService(repository.NewMemberRepository(testDB))
	return testDB, svc
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "010-1234-5678", NormalizePhone("01012345678"))
	assert.Equal(t, "010-1234-5678", NormalizePhone("010-1234-5678"))
	assert.Equal(t, "010-1234-5678", NormalizePhone("010 1234 5678"))
	assert.Equal(t, "02-123-4567", NormalizePhone("021234567"))
	assert.Equal(t, "02-123-4567", NormalizePhone("02-123-4567"))
	// 서울 번호는 지역번호가 두 자리라 10자리도 02-0000-0000 꼴이다
	assert.Equal(t, "02-1234-5678", NormalizePhone("0212345678"))
	assert.Equal(t, "031-123-4567", NormalizePhone("0311234567"))
	// 9자리인데 02로 시작하지 않으면 자를 기준이 없다
	assert.Equal(t, "031123456", NormalizePhone("031123456"))
	assert.Equal(t, "1234", NormalizePhone("1234"))
	assert.Equal(t, "", NormalizePhone(""))
}

func TestMemberService_CreateMember(t *testing.T) {
	testDB, svc := setupMemberServiceTest(t)
	defer db.CleanupTestDB(testDB)

	member, err := svc.CreateMember(&CreateMemberRequest{
		Name:  "홍길동",
		Phone: "01012345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "M0001", member.MemberNo)
	assert.Equal(t, "010-1234-5678", member.Phone)
	assert.Equal(t, model.MemberStatusActive, member.Status)

	// 회원번호는 순차 발급된다
	second, err := svc.CreateMember(&CreateMemberRequest{Name: "김철수"})
	require.NoError(t, err)
	assert.Equal(t, "M0002", second.MemberNo)
}

func TestMemberService_CreateMember_DuplicatePhone(t *testing.T) {
	testDB, svc := setupMemberServiceTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.CreateMember(&CreateMemberRequest{Name: "홍길동", Phone: "010-1234-5678"})
	require.NoError(t, err)

	// 표기가 달라도 정규화 후 같은 번호면 중복이다
	_, err = svc.CreateMember(&CreateMemberRequest{Name: "김철수", Phone: "01012345678"})
	assert.ErrorIs(t, err, ErrMemberPhoneExists)
}

func TestMemberService_CreateMember_EmptyName(t *testing.T) {
	testDB, svc := setupMemberServiceTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.CreateMember(&CreateMemberRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrMemberNameEmpty)
}

func TestMemberService_UpdateMember(t *testing.T) {
	testDB, svc := setupMemberServiceTest(t)
	defer db.CleanupTestDB(testDB)

	member, err := svc.CreateMember(&CreateMemberRequest{Name: "홍길동", Phone: "010-1111-2222"})
	require.NoError(t, err)

	hold := model.MemberStatusHold
	job := "교수"
	updated, err := svc.UpdateMember(member.ID, &UpdateMemberRequest{
		Job:    &job,
		Status: &hold,
	})
	require.NoError(t, err)
	assert.Equal(t, "교수", updated.Job)
	assert.Equal(t, model.MemberStatusHold, updated.Status)
	// 건드리지 않은 필드는 유지된다
	assert.Equal(t, "010-1111-2222", updated.Phone)
}

func TestMemberService_GetMember_NotFound(t *testing.T) {
	testDB, svc := setupMemberServiceTest(t)
	defer db.CleanupTestDB(testDB)

	_, err := svc.GetMember(999)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
