package beanlife

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gocrud/beanlife/config"
	"github.com/gocrud/beanlife/lifecycle"
	"github.com/gocrud/beanlife/logging"
)

// Report 一次运行的结果
type Report struct {
	Greeting    string
	Environment string
	Markers     []lifecycle.Marker
}

// RunOptions 运行选项
type RunOptions struct {
	// Wait 为 true 时在业务调用之后阻塞，直到收到退出信号或 ctx 结束
	Wait bool
	// ShutdownTimeout 默认 5 秒
	ShutdownTimeout time.Duration
}

// Run 引导应用、调用两个控制器，然后关闭
func Run(ctx context.Context, settings config.Settings, logger logging.Logger, opts RunOptions) (Report, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	// 1. Bootstrap
	application, err := New(settings, logger)
	if err != nil {
		return Report{}, err
	}

	// 2. Start
	if err := application.Runtime.Start(ctx); err != nil {
		return Report{}, errors.Join(err, application.Close(context.Background()))
	}

	// 3. 业务调用
	report := Report{
		Greeting:    application.SayHello(),
		Environment: application.GetEnvironment(),
	}
	logger.Info("Controller replied",
		logging.Field{Key: "greeting", Value: report.Greeting},
		logging.Field{Key: "environment", Value: report.Environment})

	// 4. 阻塞并监听退出信号
	if opts.Wait {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", logging.Field{Key: "signal", Value: sig.String()})
		case <-ctx.Done():
			logger.Info("Context cancelled")
		case <-application.Runtime.Done():
			logger.Info("Application stop requested")
		}
	}

	// 5. Graceful Shutdown
	timeout := opts.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err = application.Close(shutdownCtx)
	report.Markers = application.Recorder.Markers()
	return report, err
}
