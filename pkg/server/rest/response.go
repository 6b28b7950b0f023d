package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/roadnet/pkg/server"
)

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInternalServerErrorRend(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     "Internal server error.",
		ErrorText:      err.Error(),
	}
}

// ErrRoadNetwork. map server.ErrorCode ke status http.
func ErrRoadNetwork(err error) render.Renderer {
	resp := &ErrResponse{Err: err, ErrorText: err.Error(), AppCode: int64(server.CodeOf(err))}
	switch server.CodeOf(err) {
	case server.ErrBadParamInput:
		resp.HTTPStatusCode = http.StatusBadRequest
		resp.StatusText = "Invalid request."
	case server.ErrNotFound:
		resp.HTTPStatusCode = http.StatusNotFound
		resp.StatusText = "Resource not found."
	case server.ErrConflict:
		resp.HTTPStatusCode = http.StatusConflict
		resp.StatusText = "Conflict."
	case server.ErrUnprocessable:
		resp.HTTPStatusCode = http.StatusUnprocessableEntity
		resp.StatusText = "Unprocessable request."
	default:
		return ErrInternalServerErrorRend(errors.New("internal server error"))
	}
	return resp
}

var validate = newValidator()

type requestValidator struct {
	v     *validator.Validate
	trans ut.Translator
}

func newValidator() *requestValidator {
	v := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(v, trans)
	return &requestValidator{v: v, trans: trans}
}

// bindAndValidate. render.Bind lalu validasi struct tag, response error langsung ditulis ke w.
func bindAndValidate(w http.ResponseWriter, r *http.Request, data render.Binder) bool {
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return false
	}
	return validateStruct(w, r, data)
}

func validateStruct(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	if err := validate.v.Struct(data); err != nil {
		render.Render(w, r, ErrValidation(err, translateError(err, validate.trans)))
		return false
	}
	return true
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		translatedErr := fmt.Errorf("%s", e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
