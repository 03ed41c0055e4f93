package apierrors

const (
	MsgNotAuthorized      = "notAuthorized"
	MsgMissingCredentials = "missingCredentials"
	MsgInvalidCredentials = "invalidCredentials"
	MsgUsernameTaken      = "usernameTaken"
	MsgFailRegister       = "failRegister"
	MsgFailLogin          = "failLogin"

	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailListTask       = "errorListTask"
	MsgFailGetTask        = "failGetTask"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgTaskDeleted        = "taskDeleted"

	MsgMissingTitle            = "missingTitle"
	MsgFailGenerateDescription = "failGenerateDescription"
)
