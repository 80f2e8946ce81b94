package model

// 角色标识
const (
	RoleAuditor          = "auditor"
	RoleUniversityIQAC   = "university_iqac_coordination"
	RoleRegistrar        = "registrar"
	RoleViceChancellor   = "vice_chancellor"
	RoleDirector         = "director"
	RoleIQACCoordinators = "iqac_coordinators"
	RoleHOD              = "hod"
	RoleFaculty          = "faculty"
)

// RoleDisplay 角色展示名
var RoleDisplay = map[string]string{
	RoleAuditor:          "Auditor",
	RoleUniversityIQAC:   "University IQAC Coordination",
	RoleRegistrar:        "Registrar",
	RoleViceChancellor:   "Vice Chancellor",
	RoleDirector:         "Director",
	RoleIQACCoordinators: "IQAC Coordinators",
	RoleHOD:              "HOD",
	RoleFaculty:          "Faculty",
}

// RequiredApprovers 报告最终通过前必须全部同意的角色
// 顺序仅用于展示，对聚合结果无影响
var RequiredApprovers = []string{
	RoleAuditor,
	RoleUniversityIQAC,
	RoleRegistrar,
	RoleViceChancellor,
	RoleDirector,
	RoleIQACCoordinators,
	RoleHOD,
}

// AdminRoles 以管理员身份登录的角色
// 管理员会话不持有普通审批角色，两者互斥
var AdminRoles = []string{
	RoleUniversityIQAC,
	RoleRegistrar,
}

// RoleExists 判断角色是否存在
func RoleExists(role string) bool {
	_, ok := RoleDisplay[role]
	return ok
}

// IsRequiredApprover 判断角色是否属于必须审批集合
func IsRequiredApprover(role string) bool {
	for _, r := range RequiredApprovers {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdminRole 判断角色登录后是否获得管理员身份
func IsAdminRole(role string) bool {
	for _, r := range AdminRoles {
		if r == role {
			return true
		}
	}
	return false
}
