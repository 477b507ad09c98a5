package page_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mckapp/internal/page"
	"mckapp/internal/page/pagetest"
)

type fixture struct {
	doc     *pagetest.Document
	console *pagetest.Console
	dialog  *pagetest.Dialog
}

func newFixture(ids ...string) *fixture {
	return &fixture{
		doc:     pagetest.NewDocument(ids...),
		console: &pagetest.Console{},
		dialog:  &pagetest.Dialog{},
	}
}

func (f *fixture) install() {
	page.New(f.doc, f.console, f.dialog).Install()
}

func TestBehavior_Install(t *testing.T) {
	t.Run("読み込み完了まで要素に触らない", func(t *testing.T) {
		f := newFixture(page.TitleID, page.LoginButtonID)
		f.install()

		assert.Equal(t, 1, f.doc.ListenerCount(page.EventContentLoaded))
		assert.Zero(t, f.doc.Element(page.TitleID).ListenerCount(page.EventMouseEnter))
		assert.Zero(t, f.doc.Element(page.LoginButtonID).ListenerCount(page.EventClick))
		assert.Empty(t, f.console.Lines)
	})

	t.Run("読み込み完了でハンドラを登録する", func(t *testing.T) {
		f := newFixture(page.TitleID, page.LoginButtonID)
		f.install()
		f.doc.Dispatch(page.EventContentLoaded)

		title := f.doc.Element(page.TitleID)
		assert.Equal(t, 1, title.ListenerCount(page.EventMouseEnter))
		assert.Equal(t, 1, title.ListenerCount(page.EventAnimationEnd))
		assert.Equal(t, 1, f.doc.Element(page.LoginButtonID).ListenerCount(page.EventClick))
		assert.Equal(t, []string{page.MessageLoaded}, f.console.Lines)
		assert.Empty(t, f.dialog.Alerts)
	})
}

func TestBehavior_Title(t *testing.T) {
	f := newFixture(page.TitleID, page.LoginButtonID)
	f.install()
	f.doc.Dispatch(page.EventContentLoaded)

	title := f.doc.Element(page.TitleID)
	require.Equal(t, page.StateIdle, page.TitleState(title))

	t.Run("ホバーで回転クラスを付ける", func(t *testing.T) {
		title.Dispatch(page.EventMouseEnter)

		assert.Contains(t, title.Classes(), page.RotatingClass)
		assert.Equal(t, page.StateRotating, page.TitleState(title))
	})

	t.Run("回転中のホバーでクラスは重複しない", func(t *testing.T) {
		title.Dispatch(page.EventMouseEnter)

		assert.Equal(t, []string{page.RotatingClass}, title.Classes())
	})

	t.Run("アニメーション終了でクラスを外す", func(t *testing.T) {
		title.Dispatch(page.EventAnimationEnd)

		assert.NotContains(t, title.Classes(), page.RotatingClass)
		assert.Equal(t, page.StateIdle, page.TitleState(title))
	})

	t.Run("再度ホバーすると回転する", func(t *testing.T) {
		title.Dispatch(page.EventMouseEnter)

		assert.Equal(t, page.StateRotating, page.TitleState(title))
	})

	t.Run("タイトルの操作では通知もログも出ない", func(t *testing.T) {
		assert.Empty(t, f.dialog.Alerts)
		assert.Equal(t, []string{page.MessageLoaded}, f.console.Lines)
	})
}

func TestBehavior_LoginButton(t *testing.T) {
	f := newFixture(page.TitleID, page.LoginButtonID)
	f.install()
	f.doc.Dispatch(page.EventContentLoaded)

	f.doc.Element(page.LoginButtonID).Dispatch(page.EventClick)

	assert.Equal(t, []string{page.MessageLoginSoon}, f.dialog.Alerts)
	assert.Equal(t, []string{page.MessageLoaded, page.MessageLoginPressed}, f.console.Lines)
	assert.Empty(t, f.doc.Element(page.LoginButtonID).Classes())
	assert.Equal(t, page.StateIdle, page.TitleState(f.doc.Element(page.TitleID)))
}

func TestBehavior_MissingElement(t *testing.T) {
	testCases := []struct {
		name    string
		ids     []string
		missing string
	}{
		{"タイトルなし", []string{page.LoginButtonID}, page.TitleID},
		{"ログインボタンなし", []string{page.TitleID}, page.LoginButtonID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(tc.ids...)

			err := page.New(f.doc, f.console, f.dialog).Attach()
			require.ErrorIs(t, err, page.ErrElementNotFound)
			assert.Contains(t, err.Error(), tc.missing)

			// 存在する要素にもハンドラは登録されない
			for _, id := range tc.ids {
				el := f.doc.Element(id)
				assert.Zero(t, el.ListenerCount(page.EventMouseEnter))
				assert.Zero(t, el.ListenerCount(page.EventClick))
			}
			assert.Empty(t, f.console.Lines)
		})
	}

	t.Run("読み込み完了時はエラーをログに出す", func(t *testing.T) {
		f := newFixture()
		f.install()
		f.doc.Dispatch(page.EventContentLoaded)

		require.Len(t, f.console.Lines, 1)
		assert.Contains(t, f.console.Lines[0], page.TitleID)
		assert.NotContains(t, f.console.Lines, page.MessageLoaded)
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", page.StateIdle.String())
	assert.Equal(t, "rotating", page.StateRotating.String())
	assert.Equal(t, "State(7)", page.State(7).String())
}
