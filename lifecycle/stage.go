package lifecycle

import "fmt"

// Stage 生命周期阶段
type Stage string

const (
	StageConstructor        Stage = "constructor"
	StageSetter             Stage = "setter"
	StageBeanName           Stage = "beanName"
	StageBeanFactory        Stage = "beanFactory"
	StageApplicationContext Stage = "applicationContext"
	StagePostProcessBefore  Stage = "postProcessBefore"
	StageInit               Stage = "init"
	StageBeanInitializing   Stage = "beanInitializing"
	StagePostProcessAfter   Stage = "postProcessAfter"
	// StageInUse 初始化完成后、销毁之前的业务调用，没有编号
	StageInUse      Stage = "inUse"
	StagePreDestroy Stage = "preDestroy"
	StageDestroy    Stage = "destroy"
)

// Sequence 是阶段的固定顺序
var Sequence = []Stage{
	StageConstructor,
	StageSetter,
	StageBeanName,
	StageBeanFactory,
	StageApplicationContext,
	StagePostProcessBefore,
	StageInit,
	StageBeanInitializing,
	StagePostProcessAfter,
	StageInUse,
	StagePreDestroy,
	StageDestroy,
}

// 输出标签沿用经典编号，6 号没有对应回调
var stageNumbers = map[Stage]int{
	StageConstructor:        1,
	StageSetter:             2,
	StageBeanName:           3,
	StageBeanFactory:        4,
	StageApplicationContext: 5,
	StagePostProcessBefore:  7,
	StageInit:               8,
	StageBeanInitializing:   9,
	StagePostProcessAfter:   10,
	StagePreDestroy:         11,
	StageDestroy:            12,
}

// Number 返回阶段编号，StageInUse 与未知阶段返回 0
func (s Stage) Number() int {
	return stageNumbers[s]
}

// Index 返回阶段在 Sequence 中的位置，未知阶段返回 -1
func (s Stage) Index() int {
	for i, stage := range Sequence {
		if stage == s {
			return i
		}
	}
	return -1
}

// Before 报告 s 是否在 other 之前
func (s Stage) Before(other Stage) bool {
	return s.Index() >= 0 && other.Index() >= 0 && s.Index() < other.Index()
}

// Label 返回控制台标签，例如 "1. constructor"
func (s Stage) Label() string {
	if n := s.Number(); n > 0 {
		return fmt.Sprintf("%d. %s", n, s)
	}
	return string(s)
}
