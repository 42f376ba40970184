package common

import (
	"errors"
	"net/http"

	"volunteer-tracker-go/internal/domain/category"
	"volunteer-tracker-go/internal/domain/family"
	"volunteer-tracker-go/internal/domain/invitation"
	"volunteer-tracker-go/internal/domain/schoolyear"
	"volunteer-tracker-go/internal/domain/task"
	"volunteer-tracker-go/internal/domain/user"
	"volunteer-tracker-go/internal/domain/validation"
	"volunteer-tracker-go/pkg/logger"
)

type errorMapping struct {
	target error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{schoolyear.ErrNoActiveSchoolYear, http.StatusBadRequest, "no_active_school_year"},
	{schoolyear.ErrSchoolYearNotFound, http.StatusNotFound, "school_year_not_found"},

	{family.ErrFamilyNotFound, http.StatusNotFound, "family_not_found"},
	{family.ErrFamilyArchived, http.StatusBadRequest, "family_archived"},
	{family.ErrDuplicateName, http.StatusBadRequest, "duplicate_name"},
	{family.ErrAlreadyArchived, http.StatusConflict, "already_archived"},
	{family.ErrNotArchived, http.StatusConflict, "not_archived"},
	{family.ErrRestoreNameTaken, http.StatusConflict, "name_taken"},

	{user.ErrUserNotFound, http.StatusNotFound, "user_not_found"},
	{user.ErrCannotModifySelf, http.StatusForbidden, "cannot_modify_self"},
	{user.ErrCannotArchiveAdmin, http.StatusForbidden, "cannot_archive_admin"},
	{user.ErrAlreadyArchived, http.StatusConflict, "already_archived"},
	{user.ErrNotArchived, http.StatusConflict, "not_archived"},
	{user.ErrDuplicateUser, http.StatusConflict, "user_exists"},

	{category.ErrCategoryNotFound, http.StatusNotFound, "category_not_found"},

	{task.ErrTaskNotFound, http.StatusNotFound, "task_not_found"},
	{task.ErrNotParent, http.StatusForbidden, "forbidden"},
	{task.ErrNoFamily, http.StatusForbidden, "no_family"},
	{task.ErrNotOwner, http.StatusForbidden, "not_owner"},

	{invitation.ErrInvitationNotFound, http.StatusNotFound, "invitation_not_found"},
	{invitation.ErrInvitationUsed, http.StatusConflict, "invitation_used"},
	{invitation.ErrUserExists, http.StatusConflict, "user_exists"},
}

// WriteServiceError renders a domain error. Known business errors are logged
// at WARN, anything else is a 500 logged at ERROR, both through the
// request-scoped logger when there is one.
func WriteServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, op string, err error, args ...any) {
	log = logger.FromContext(r.Context(), log)
	if fieldErr, ok := validation.As(err); ok {
		log.BusinessError(op+": validation failed", err, args...)
		writeFieldError(w, fieldErr.Field, fieldErr.Message)
		return
	}

	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			log.BusinessError(op+": "+mapping.code, err, args...)
			writeError(w, mapping.status, mapping.code, mapping.target.Error())
			return
		}
	}

	log.InternalError(op+" failed", err, args...)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
