package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"mckapp/internal/config"
	"mckapp/internal/static"
)

var (
	// ErrAlreadyStarted は Start を2回以上呼んだ場合のエラー
	ErrAlreadyStarted = errors.New("サーバーはすでに起動しています")
	// ErrClosed は Shutdown 後に Start を呼んだ場合のエラー
	ErrClosed = errors.New("サーバーはシャットダウン済みです")
)

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	httpServer *http.Server
	handler    http.Handler

	mu       sync.Mutex
	listener net.Listener
	started  bool
	closed   bool
	ready    chan struct{}
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) (*Server, error) {
	files, err := static.Open(cfg.Static)
	if err != nil {
		return nil, err
	}

	engine := newEngine(cfg, static.NewHandler(files, cfg.Static.IndexFile))

	return &Server{
		config:  cfg,
		handler: engine,
		ready:   make(chan struct{}),
		httpServer: &http.Server{
			Addr:         cfg.ServerAddress(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}, nil
}

// Handler はサーバーのHTTPハンドラを返す
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Ready はリッスンを開始したときにクローズされるチャンネルを返す
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr は実際にリッスンしているアドレスを返す
// 起動前は設定上のアドレスを返す
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return s.config.ServerAddress()
	}
	return s.listener.Addr().String()
}

// Start はサーバーを起動する
// コンテキストのキャンセルかシグナルを受け取るまでブロックする
// 2回目以降の呼び出しは ErrAlreadyStarted、Shutdown 後は ErrClosed を返す
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("サーバーの起動に失敗: %w", err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	port := ln.Addr().(*net.TCPAddr).Port
	log.Printf("サーバーをポート %d で起動しました", port)
	close(s.ready)

	// シャットダウン用のチャンネル
	shutdownCh := make(chan error, 1)

	// サーバーを別ゴルーチンで起動
	// 別のゴルーチンから Shutdown された場合は nil が届く
	go func() {
		err := s.httpServer.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			shutdownCh <- nil
			return
		}
		shutdownCh <- fmt.Errorf("サーバーの実行に失敗: %w", err)
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-shutdownCh:
		return err
	}

	// グレースフルシャットダウン
	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	log.Println("サーバーをシャットダウンしています...")

	ctx := context.Background()
	if timeout := s.config.Server.ShutdownTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	log.Println("サーバーが正常にシャットダウンされました")
	return nil
}
