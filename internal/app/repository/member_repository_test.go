package repository

import (
	"testing"
	"time"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMemberTest(t *testing.T) (*gorm.DB, MemberRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewMemberRepository(testDB)
	return testDB, repo
}

func TestMemberRepository_Create(t *testing.T) {
	testDB, repo := setupMemberTest(t)
	defer db.CleanupTestDB(testDB)

	tests := []struct {
		name    string
		member  *model.Member
		wantErr bool
	}{
		{
			name: "Valid member",
			member: &model.Member{
				MemberNo:   "M0001",
				Name:       "홍길동",
				Phone:      "010-1234-5678",
				FirstVisit: time.Now(),
				Status:     model.MemberStatusActive,
			},
			wantErr: false,
		},
		{
			name: "Duplicate member number",
			member: &model.Member{
				MemberNo:   "M0001",
				Name:       "김철수",
				Phone:      "010-8765-4321",
				FirstVisit: time.Now(),
				Status:     model.MemberStatusActive,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(tt.member)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, tt.member.ID)
			}
		})
	}
}

func TestMemberRepository_Search(t *testing.T) {
	testDB, repo := setupMemberTest(t)
	defer db.CleanupTestDB(testDB)

	members := []*model.Member{
		{MemberNo: "M0001", Name: "홍길동", Phone: "010-1111-2222", FirstVisit: time.Now(), Status: model.MemberStatusActive},
		{MemberNo: "M0002", Name: "홍판서", Phone: "010-3333-4444", FirstVisit: time.Now(), Status: model.MemberStatusActive},
		{MemberNo: "M0003", Name: "김철수", Phone: "010-5555-6666", FirstVisit: time.Now(), Status: model.MemberStatusHold},
	}
	for _, m := range members {
		require.NoError(t, repo.Create(m))
	}

	// 이름 부분 일치
	found, total, err := repo.Search("홍", nil, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, found, 2)

	// 전화번호 일치
	found, total, err = repo.Search("5555", nil, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "김철수", found[0].Name)

	// 상태 필터
	hold := model.MemberStatusHold
	found, total, err = repo.Search("", &hold, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "M0003", found[0].MemberNo)
}

func TestMemberRepository_LastMemberNo(t *testing.T) {
	testDB, repo := setupMemberTest(t)
	defer db.CleanupTestDB(testDB)

	// 빈 테이블이면 ""
	last, err := repo.LastMemberNo()
	require.NoError(t, err)
	assert.Equal(t, "", last)

	for _, no := range []string{"M0001", "M0002", "M0003"} {
		require.NoError(t, repo.Create(&model.Member{
			MemberNo:   no,
			Name:       "회원" + no,
			FirstVisit: time.Now(),
			Status:     model.MemberStatusActive,
		}))
	}

	last, err = repo.LastMemberNo()
	require.NoError(t, err)
	assert.Equal(t, "M0003", last)

	// 삭제된 회원 번호도 재사용하지 않는다
	var m model.Member
	require.NoError(t, testDB.Where("member_no = ?", "M0003").First(&m).Error)
	require.NoError(t, repo.Delete(m.ID))

	last, err = repo.LastMemberNo()
	require.NoError(t, err)
	assert.Equal(t, "M0003", last)
}
