package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elburim/elburim-backend/internal/app/model"
	"github.com/elburim/elburim-backend/internal/app/repository"
	"github.com/elburim/elburim-backend/internal/app/service"
	"github.com/elburim/elburim-backend/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupMemberControllerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	memberService := service.NewMemberService(repository.NewMemberRepository(testDB))
	memberController := NewMemberController(memberService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/members", memberController.CreateMember)
	router.GET("/api/v1/members", memberController.SearchMembers)
	router.GET("/api/v1/members/:id", memberController.GetMember)
	router.DELETE("/api/v1/members/:id", memberController.DeleteMember)

	return router, testDB
}

func TestMemberController_CreateMember(t *testing.T) {
	router, _ := setupMemberControllerTest(t)

	body, _ := json.Marshal(gin.H{
		"name":  "홍길동",
		"phone": "01012345678",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Member model.Member `json:"member"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "M0001", resp.Member.MemberNo)
	assert.Equal(t, "010-1234-5678", resp.Member.Phone)
}

func TestMemberController_CreateMember_DuplicatePhone(t *testing.T) {
	router, _ := setupMemberControllerTest(t)

	body, _ := json.Marshal(gin.H{"name": "홍길동", "phone": "010-1234-5678"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/members", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	body, _ = json.Marshal(gin.H{"name": "김철수", "phone": "01012345678"})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/members", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "MEMBER_PHONE_EXISTS")
}

func TestMemberController_GetMember_NotFound(t *testing.T) {
	router, _ := setupMemberControllerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members/999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "MEMBER_NOT_FOUND")
}

func TestMemberController_SearchMembers(t *testing.T) {
	router, testDB := setupMemberControllerTest(t)

	memberRepo := repository.NewMemberRepository(testDB)
	require.NoError(t, memberRepo.Create(&model.Member{MemberNo: "M0001", Name: "홍길동", Status: model.MemberStatusActive}))
	require.NoError(t, memberRepo.Create(&model.Member{MemberNo: "M0002", Name: "김철수", Status: model.MemberStatusActive}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/members?keyword=홍", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Members []model.Member `json:"members"`
		Total   int64          `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Members, 1)
	assert.Equal(t, "홍길동", resp.Members[0].Name)
}
