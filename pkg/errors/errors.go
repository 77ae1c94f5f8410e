package errors

import "errors"

// ErrBookingConflict 预订时段与已接受的预订重叠
// 由 Repository 层在冲突检查事务中返回，Service 层原样透传
var ErrBookingConflict = errors.New("该设施在所选时段已被预订")
