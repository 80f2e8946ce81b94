package approval

import "github.com/hrushikeshnair/MGMU-IQAC/internal/model"

// Recompute 根据各角色审批意见重新计算报告整体状态
// 纯函数，幂等：任意一条 rejected 即为 rejected；
// 必须审批集合中所有角色均 approved 才算 approved；其余情况为 pending
func Recompute(approvals map[string]model.Decision) string {
	for _, d := range approvals {
		if d.Decision == model.DecisionRejected {
			return model.StatusRejected
		}
	}
	for _, role := range model.RequiredApprovers {
		d, ok := approvals[role]
		if !ok || d.Decision != model.DecisionApproved {
			return model.StatusPending
		}
	}
	return model.StatusApproved
}
