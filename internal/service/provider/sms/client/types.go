package client

import "errors"

const OK = "OK"

var (
	ErrInvalidParameter = errors.New("参数错误")
	ErrSendFailed       = errors.New("短信发送失败")
)

// Client 短信供应商客户端
//
//go:generate mockgen -source=./types.go -destination=./mocks/client.mock.go -package=smsmocks -typed Client
type Client interface {
	Send(req SendReq) (SendResp, error)
}

type SendReq struct {
	PhoneNumbers []string
	SignName     string
	TemplateID   string
	// TemplateParam 模版参数，key 为参数名
	TemplateParam map[string]string
}

type SendResp struct {
	RequestID string
	// PhoneNumbers 每个手机号的发送状态，Code 为 OK 表示成功
	PhoneNumbers map[string]SendRespStatus
}

type SendRespStatus struct {
	Code    string
	Message string
}
