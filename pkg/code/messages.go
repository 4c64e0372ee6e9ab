package code

import "net/http"

// Success codes // 成功码
var (
	Success = NewSuccess(0, lang{en: "Success", zh_cn: "成功"})

	SuccessDocumentCreated    = NewSuccess(20001, lang{en: "%s was created.", zh_cn: "%s 已创建。"})
	SuccessDocumentUpdated    = NewSuccess(20002, lang{en: "%s has been updated.", zh_cn: "%s 已更新。"})
	SuccessDocumentDeleted    = NewSuccess(20003, lang{en: "%s was deleted.", zh_cn: "%s 已删除。"})
	SuccessDocumentDuplicated = NewSuccess(20004, lang{en: "%s was created from %s.", zh_cn: "已从 %[2]s 创建 %[1]s。"})
	SuccessImageUploaded      = NewSuccess(20005, lang{en: "%s was uploaded.", zh_cn: "%s 已上传。"})

	SuccessUserSignedIn  = NewSuccess(20101, lang{en: "Welcome!", zh_cn: "欢迎！"})
	SuccessUserSignedOut = NewSuccess(20102, lang{en: "You have signed out.", zh_cn: "您已退出登录。"})
	SuccessUserSignedUp  = NewSuccess(20103, lang{en: "Your account has been created. Please sign in.", zh_cn: "账号已创建，请登录。"})
)

// Error codes // 错误码
var (
	ErrorServerInternal = NewError(10000, lang{en: "Internal server error", zh_cn: "服务内部错误"}).
				WithStatusCode(http.StatusInternalServerError)
	ErrorInvalidParams = NewError(10001, lang{en: "Invalid request parameters", zh_cn: "请求参数错误"}).
				WithStatusCode(http.StatusBadRequest)
	ErrorNotFoundPage = NewError(10002, lang{en: "Page not found", zh_cn: "页面不存在"}).
				WithStatusCode(http.StatusNotFound)
	ErrorTooManyRequests = NewError(10003, lang{en: "Too many requests", zh_cn: "请求过于频繁"}).
				WithStatusCode(http.StatusTooManyRequests)

	ErrorDocumentNotExist = NewError(10101, lang{en: "%s does not exist.", zh_cn: "%s 不存在。"})
	ErrorDocumentNameRequired = NewError(10102, lang{en: "A name is required.", zh_cn: "名称不能为空。"}).
					WithStatusCode(http.StatusUnprocessableEntity)
	ErrorDocumentBadExtension = NewError(10103, lang{en: "The file extension must be .txt or .md.", zh_cn: "文件扩展名必须是 .txt 或 .md。"}).
					WithStatusCode(http.StatusUnprocessableEntity)
	ErrorDocumentAlreadyExists = NewError(10104, lang{en: "%s already exists.", zh_cn: "%s 已存在。"}).
					WithStatusCode(http.StatusUnprocessableEntity)

	ErrorHistoryNotLinked = NewError(10201, lang{en: "%s is not a version of %s.", zh_cn: "%s 不是 %s 的历史版本。"})

	ErrorUserNotSignedIn = NewError(10301, lang{en: "You must be signed in to do that.", zh_cn: "请先登录后再执行该操作。"})
	ErrorUserInvalidCredentials = NewError(10302, lang{en: "Invalid credentials", zh_cn: "用户名或密码错误"})
	ErrorUserFieldsBlank = NewError(10303, lang{en: "Username and password can't be blank.", zh_cn: "用户名和密码不能为空。"}).
				WithStatusCode(http.StatusUnprocessableEntity)
	ErrorUserAlreadyExists = NewError(10304, lang{en: "Username already exists.", zh_cn: "用户名已存在。"}).
				WithStatusCode(http.StatusUnprocessableEntity)
	ErrorUserRegisterFailed = NewError(10305, lang{en: "Sign up failed", zh_cn: "注册失败"}).
				WithStatusCode(http.StatusInternalServerError)

	ErrorUploadFileRequired = NewError(10401, lang{en: "You must select a file to upload.", zh_cn: "请选择要上传的文件。"}).
				WithStatusCode(http.StatusUnprocessableEntity)
	ErrorUploadBadExtension = NewError(10402, lang{en: "The image extension must be .png, .jpg, .jpeg or .gif.", zh_cn: "图片扩展名必须是 .png、.jpg、.jpeg 或 .gif。"}).
				WithStatusCode(http.StatusUnprocessableEntity)
	ErrorUploadFileFailed = NewError(10403, lang{en: "Upload failed", zh_cn: "上传失败"}).
				WithStatusCode(http.StatusInternalServerError)
	ErrorInvalidStorageType = NewError(10404, lang{en: "Invalid storage type", zh_cn: "存储类型错误"}).
				WithStatusCode(http.StatusInternalServerError)
)
