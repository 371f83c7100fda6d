package ioc

import (
	"gitee.com/flycash/expense-notification/internal/api/web"
	"github.com/gotomicro/ego/server/egin"
)

func InitWebServer(hdl *web.Handler) *egin.Component {
	server := egin.Load("server.http").Build()
	hdl.RegisterRoutes(server.Engine)
	return server
}
