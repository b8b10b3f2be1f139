package types

// 角色常量. 查询层只区分 admin 与普通用户：非 admin 一律按 user_id 限定归属.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Identity 表示已解析的调用方身份（id + 角色）.
// 身份的签发与校验由前置代理完成，这里只消费结果.
type Identity struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// IsAdmin 是否为管理员.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
