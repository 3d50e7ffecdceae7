/**
* Name: 			upload_handler.go
* Description: 		Gin 프레임워크의 upload 테이블 CRUD 핸들러
* Workflow: 		요청 검증, 커넥션 획득, SQL 실행, JSON 응답
 */
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"ProjectUploadService/internal/errs"
	"ProjectUploadService/internal/middleware"
	"ProjectUploadService/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// UploadStore is the persistence the handlers need.
type UploadStore interface {
	Create(ctx context.Context, r models.UploadRecord) error
	List(ctx context.Context) ([]models.UploadRecord, error)
	Update(ctx context.Context, r models.UploadRecord) (int64, error)
	Delete(ctx context.Context, email string) (int64, error)
}

type UploadHandler struct {
	store UploadStore
}

func NewUploadHandler(store UploadStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// /api/upload, /api/update/:email 요청 바디
type UploadRequest struct {
	Email              string  `json:"email" binding:"required" example:"a@x.com"`
	Password           string  `json:"password" binding:"required" example:"p"`
	Address            string  `json:"address" binding:"required" example:"123 St"`
	ProjectTitle       string  `json:"projectTitle" binding:"required" example:"T"`
	ProjectDescription *string `json:"projectDescription" example:"A short description"`
	ProjectExperience  *string `json:"projectExperience" example:"2 years"`
	ShareLink          *string `json:"shareLink" example:"https://example.com/share"`
}

func (r UploadRequest) toRecord() models.UploadRecord {
	return models.UploadRecord{
		Email:              r.Email,
		Password:           r.Password,
		Address:            r.Address,
		ProjectTitle:       r.ProjectTitle,
		ProjectDescription: r.ProjectDescription,
		ProjectExperience:  r.ProjectExperience,
		ShareLink:          r.ShareLink,
	}
}

var errInvalidBody = errors.New("invalid request body")

// Create godoc
// @Summary      프로젝트 등록 (Create)
// @Description  새 upload 레코드를 저장합니다. 이메일 중복 검사는 하지 않습니다.
// @Tags         Upload
// @Accept       json
// @Produce      json
// @Param        request body handler.UploadRequest true "등록할 레코드"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse "필수 필드 누락"
// @Failure      500 {object} handler.ErrorResponse "DB 오류"
// @Router       /api/upload [post]
func (h *UploadHandler) Create(c *gin.Context) {
	req, err := bindUpload(c)
	if err != nil {
		respondError(c, "create", err)
		return
	}
	middleware.GetLogger(c).Debug().Str("email", req.Email).Msg("Create(): received upload")

	if err := h.store.Create(detach(c), req.toRecord()); err != nil {
		respondError(c, "create", err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: MsgInserted})
}

// List godoc
// @Summary      전체 조회 (List)
// @Description  upload 테이블의 모든 레코드를 반환합니다. 정렬 순서는 보장되지 않습니다.
// @Tags         Upload
// @Produce      json
// @Success      200 {array}  models.UploadRecord
// @Failure      500 {object} handler.ErrorResponse "DB 오류"
// @Router       /api/data [get]
func (h *UploadHandler) List(c *gin.Context) {
	records, err := h.store.List(detach(c))
	if err != nil {
		respondError(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// Update godoc
// @Summary      레코드 수정 (Update)
// @Description  바디의 email 과 일치하는 행의 나머지 필드를 모두 덮어씁니다.
// @Description  경로의 email 은 키로 사용되지 않으며, 일치하는 행이 없어도 성공을 반환합니다.
// @Tags         Upload
// @Accept       json
// @Produce      json
// @Param        email   path string               true "대상 이메일"
// @Param        request body handler.UploadRequest true "전체 교체 레코드"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse "필수 필드 누락"
// @Failure      500 {object} handler.ErrorResponse "DB 오류"
// @Router       /api/update/{email} [put]
func (h *UploadHandler) Update(c *gin.Context) {
	req, err := bindUpload(c)
	if err != nil {
		respondError(c, "update", err)
		return
	}

	logger := middleware.GetLogger(c)
	if pathEmail := c.Param("email"); pathEmail != req.Email {
		logger.Warn().Str("path_email", pathEmail).Str("body_email", req.Email).
			Msg("Update(): path email differs from body, using body email")
	}

	affected, err := h.store.Update(detach(c), req.toRecord())
	if err != nil {
		respondError(c, "update", err)
		return
	}
	logger.Debug().Int64("rows", affected).Msg("Update(): done")
	c.JSON(http.StatusOK, SuccessResponse{Message: MsgUpdated})
}

// Delete godoc
// @Summary      레코드 삭제 (Delete)
// @Description  email 이 일치하는 모든 행을 삭제합니다. 일치하는 행이 없어도 성공을 반환합니다.
// @Tags         Upload
// @Produce      json
// @Param        email path string true "삭제할 이메일"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse "email 누락"
// @Failure      500 {object} handler.ErrorResponse "DB 오류"
// @Router       /api/delete/{email} [delete]
func (h *UploadHandler) Delete(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		respondError(c, "delete", errs.NewValidationError("email"))
		return
	}

	affected, err := h.store.Delete(detach(c), email)
	if err != nil {
		respondError(c, "delete", err)
		return
	}
	middleware.GetLogger(c).Debug().Int64("rows", affected).Msg("Delete(): done")
	c.JSON(http.StatusOK, SuccessResponse{Message: MsgDeleted})
}

// 클라이언트 연결이 끊겨도 쿼리는 끝까지 실행
func detach(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

func bindUpload(c *gin.Context) (UploadRequest, error) {
	var req UploadRequest
	err := io.EOF
	if c.ContentType() == binding.MIMEJSON {
		err = c.ShouldBindJSON(&req)
	}
	if errors.Is(err, io.EOF) {
		// 빈 바디나 JSON 이 아닌 바디는 빈 객체로 취급
		err = binding.Validator.ValidateStruct(&req)
	}
	if err == nil {
		return req, nil
	}

	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make([]string, 0, len(vErrs))
		for _, fe := range vErrs {
			fields = append(fields, jsonName(fe.StructField()))
		}
		return req, errs.NewValidationError(fields...)
	}
	return req, errInvalidBody
}

func jsonName(structField string) string {
	f, ok := reflect.TypeOf(UploadRequest{}).FieldByName(structField)
	if !ok {
		return structField
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	return name
}

// DB 오류 상세는 서버 로그에만 남기고 클라이언트에는 일반 메시지만 전달
func respondError(c *gin.Context, op string, err error) {
	if errors.Is(err, errInvalidBody) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: errs.MsgInvalidBody})
		return
	}

	status := errs.Status(err)
	body := ErrorResponse{Error: errs.PublicMessage(err)}

	var vErr *errs.ValidationError
	if errors.As(err, &vErr) {
		body.Fields = vErr.Fields
	} else {
		middleware.GetLogger(c).Error().Stack().Err(err).Str("op", op).Msg("respondError(): database error")
		_ = c.Error(err)
	}
	c.JSON(status, body)
}
