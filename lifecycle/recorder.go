package lifecycle

import (
	"sync"

	"github.com/gocrud/beanlife/logging"
)

// Marker 一条生命周期输出
type Marker struct {
	Stage Stage
	Text  string
}

// Recorder 按调用顺序记录 Marker，并把每条 Marker 作为一行日志输出
// nil *Recorder 可以安全使用，所有记录都被丢弃
type Recorder struct {
	logger  logging.Logger
	markers []Marker
	mu      sync.Mutex
}

// NewRecorder 创建记录器，logger 为 nil 时只记录不输出
func NewRecorder(logger logging.Logger) *Recorder {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Recorder{logger: logger}
}

// Mark 记录一个带编号的阶段，detail 会以 " : " 连接在标签之后
func (r *Recorder) Mark(stage Stage, detail ...string) {
	text := stage.Label()
	for _, d := range detail {
		text += " : " + d
	}
	r.add(Marker{Stage: stage, Text: text})
}

// Note 在业务调用阶段记录一行自由文本
func (r *Recorder) Note(text string) {
	r.add(Marker{Stage: StageInUse, Text: text})
}

func (r *Recorder) add(m Marker) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.markers = append(r.markers, m)
	r.mu.Unlock()

	r.logger.Info(m.Text, logging.Field{Key: "stage", Value: string(m.Stage)})
}

// Markers 返回已记录 Marker 的副本
func (r *Recorder) Markers() []Marker {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Marker, len(r.markers))
	copy(out, r.markers)
	return out
}

// Texts 返回已记录的文本
func (r *Recorder) Texts() []string {
	markers := r.Markers()
	out := make([]string, len(markers))
	for i, m := range markers {
		out[i] = m.Text
	}
	return out
}

// Stages 返回每个阶段首次出现的顺序
// 后置处理器重新注入依赖时 setter 会再次出现，这里只保留第一次
func (r *Recorder) Stages() []Stage {
	seen := make(map[Stage]bool)
	var out []Stage
	for _, m := range r.Markers() {
		if seen[m.Stage] {
			continue
		}
		seen[m.Stage] = true
		out = append(out, m.Stage)
	}
	return out
}

// InOrder 报告各阶段首次出现的顺序是否与 Sequence 一致
func (r *Recorder) InOrder() bool {
	last := -1
	for _, stage := range r.Stages() {
		idx := stage.Index()
		if idx <= last {
			return false
		}
		last = idx
	}
	return true
}

// Reset 清空记录
func (r *Recorder) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.markers = nil
	r.mu.Unlock()
}
