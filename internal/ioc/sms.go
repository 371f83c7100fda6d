package ioc

import (
	"fmt"

	"gitee.com/flycash/expense-notification/internal/service/provider"
	"gitee.com/flycash/expense-notification/internal/service/provider/sms"
	"gitee.com/flycash/expense-notification/internal/service/provider/sms/client"
	"github.com/gotomicro/ego/core/econf"
)

type smsVendorConfig struct {
	Name            string `yaml:"name"`
	RegionID        string `yaml:"regionId"`
	AccessKeyID     string `yaml:"accessKeyId"`
	AccessKeySecret string `yaml:"accessKeySecret"`
	AppID           string `yaml:"appId"`
	SignName        string `yaml:"signName"`
	TemplateID      string `yaml:"templateId"`
}

// InitSMSVendors 按配置顺序创建短信供应商，排在前面的优先使用
func InitSMSVendors() []NamedProvider {
	var vendors []smsVendorConfig
	if err := econf.UnmarshalKey("transport.sms.vendors", &vendors); err != nil {
		panic(err)
	}
	res := make([]NamedProvider, 0, len(vendors))
	for _, v := range vendors {
		var (
			cli client.Client
			err error
		)
		switch v.Name {
		case "aliyun":
			cli, err = client.NewAliyunSMS(v.RegionID, v.AccessKeyID, v.AccessKeySecret)
		case "tencentcloud":
			cli, err = client.NewTencentCloudSMS(v.RegionID, v.AccessKeyID, v.AccessKeySecret, v.AppID)
		default:
			err = fmt.Errorf("未知的短信供应商 %q", v.Name)
		}
		if err != nil {
			panic(err)
		}
		res = append(res, NamedProvider{
			Name:     v.Name,
			Provider: sms.NewSMSProvider(v.Name, v.SignName, v.TemplateID, cli),
		})
	}
	return res
}

// NamedProvider 带名字的传输通道，名字用于指标和链路追踪
type NamedProvider struct {
	Name     string
	Provider provider.Provider
}
