package handler

import (
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/inventory-dashboard/internal/pkg/errors"
	apiresponse "github.com/darkkaiser/inventory-dashboard/internal/service/api/model/response"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/v1/model/request"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/v1/model/response"
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog"
	"github.com/darkkaiser/inventory-dashboard/internal/service/dashboard"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/labstack/echo/v4"
)

// thumbnailFileField 썸네일 이미지를 업로드하는 multipart 필드 이름
const thumbnailFileField = "thumbnail_file"

// CreateProductHandler godoc
// @Summary 상품 등록
// @Description 원격 카탈로그 API에 상품 생성을 요청하고, 성공하면 현재 목록 맨 앞에 추가합니다.
// @Description 목록을 다시 조회하지 않으며 전체 상품 수도 바뀌지 않습니다.
// @Description
// @Description 숫자 항목은 문자열 그대로 보내며, 숫자로 시작하지 않으면 0으로 처리됩니다.
// @Description multipart/form-data로 보내는 경우 thumbnail_file 필드에 이미지를 첨부할 수 있습니다.
// @Tags Product
// @Accept json,mpfd
// @Produce json
// @Param body body dashboard.Draft true "상품 정보"
// @Success 201 {object} catalog.Product "목록에 추가된 상품"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Failure 502 {object} response.ErrorResponse "카탈로그 API 요청 실패"
// @Router /api/v1/products [post]
func (h *Handler) CreateProductHandler(c echo.Context) error {
	draft := new(dashboard.Draft)
	if err := c.Bind(draft); err != nil {
		return NewErrInvalidBody()
	}

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		thumbnail, err := h.readThumbnail(c)
		if err != nil {
			return err
		}
		if thumbnail != "" {
			draft.Thumbnail = thumbnail
		}
	}

	product, err := h.dashboard.CreateProduct(c.Request().Context(), *draft)
	if err != nil {
		h.log(c).WithError(err).Warn("상품 등록 실패")
		return NewErrCatalogRequestFailed()
	}

	h.log(c).WithFields(applog.Fields{
		"id":    product.ID,
		"title": product.Title,
	}).Info("상품 등록 완료")

	return c.JSON(http.StatusCreated, product)
}

// readThumbnail 업로드된 썸네일 파일을 data URL로 변환합니다. 파일이 없으면 빈 문자열을 반환합니다.
func (h *Handler) readThumbnail(c echo.Context) (string, error) {
	fh, err := c.FormFile(thumbnailFileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", NewErrInvalidThumbnail("")
	}

	f, err := fh.Open()
	if err != nil {
		return "", NewErrInvalidThumbnail("")
	}
	defer f.Close()

	dataURL, err := h.imageReader.ReadAsDataURL(f)
	if err != nil {
		var appErr *apperrors.AppError
		if apperrors.As(err, &appErr) {
			return "", NewErrInvalidThumbnail(appErr.Message())
		}
		return "", NewErrInvalidThumbnail("")
	}

	return dataURL, nil
}

// DeleteProductHandler godoc
// @Summary 상품 삭제
// @Description confirm=true로 확인한 경우에만 현재 목록에서 상품을 제거합니다.
// @Description 원격 API에는 요청하지 않으며 전체 상품 수도 바뀌지 않습니다.
// @Tags Product
// @Produce json
// @Param id path int true "상품 ID"
// @Param confirm query bool false "삭제 확인"
// @Success 200 {object} response.DeleteProductResponse "처리 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 상품 ID"
// @Router /api/v1/products/{id} [delete]
func (h *Handler) DeleteProductHandler(c echo.Context) error {
	req := new(request.DeleteProductRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidProductID()
	}

	ctx := dashboard.WithConfirmation(c.Request().Context(), req.Confirm)
	deleted := h.dashboard.DeleteProduct(ctx, req.ID)

	return c.JSON(http.StatusOK, response.DeleteProductResponse{Deleted: deleted})
}

// EditProductHandler godoc
// @Summary 상품 수정 (미구현)
// @Description 요청을 기록만 하고 상태는 바꾸지 않습니다.
// @Tags Product
// @Accept json
// @Produce json
// @Param id path int true "상품 ID"
// @Param body body catalog.Product false "상품 정보"
// @Success 202 {object} response.SuccessResponse "접수됨"
// @Failure 400 {object} response.ErrorResponse "잘못된 상품 ID"
// @Router /api/v1/products/{id} [put]
func (h *Handler) EditProductHandler(c echo.Context) error {
	var id int
	if err := echo.PathParamsBinder(c).MustInt("id", &id).BindError(); err != nil {
		return NewErrInvalidProductID()
	}

	product := catalog.Product{}
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&product); err != nil {
			return NewErrInvalidBody()
		}
	}
	product.ID = id

	h.dashboard.EditProduct(product)

	return c.JSON(http.StatusAccepted, apiresponse.SuccessResponse{
		ResultCode: 0,
		Message:    "접수됨",
	})
}
