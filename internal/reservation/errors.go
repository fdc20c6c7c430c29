package reservation

import "errors"

// 业务错误分类。均为不可重试的业务规则违例，原样抛给调用方；
// 传输层据此映射响应码（见 grpc_server.go）。
// 基础设施错误（数据库不可用等）不走这套分类，直接向上传播并中止操作。
var (
	ErrNotFound   = errors.New("not found")    // 实体不存在
	ErrConflict   = errors.New("conflict")     // 状态守卫违例或时间窗冲突
	ErrBadRequest = errors.New("bad request")  // 入参非法
	ErrForbidden  = errors.New("forbidden")    // 操作者无权限
)
