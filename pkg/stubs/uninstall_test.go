// Test Type: Business Logic Test
// Description: Removal of synced files and pruning of empty directories

package stubs_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/graft/pkg/errors"
	"github.com/arthur-debert/graft/pkg/paths"
	"github.com/arthur-debert/graft/pkg/stubs"
	"github.com/arthur-debert/graft/pkg/testutil"
	"github.com/arthur-debert/graft/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUninstaller(fs types.FS) *stubs.Uninstaller {
	return stubs.NewUninstaller(fs, stubRoot, paths.NewMapper(basePath))
}

func TestRemoveSyncedFiles_EmptyStubTree(t *testing.T) {
	fs := testutil.NewTestFS()
	require.NoError(t, fs.MkdirAll(stubRoot, 0755))
	require.NoError(t, fs.MkdirAll("/srv/app/app/Models/Empty", 0755))
	testutil.WriteTree(t, fs, basePath, map[string]string{
		"app/Models/User.php": "user",
	})

	result, err := newUninstaller(fs).RemoveSyncedFiles()
	require.NoError(t, err)

	assert.Empty(t, result.Removed)
	assert.True(t, testutil.Exists(fs, "/srv/app/app/Models/Empty"))
	assert.Equal(t, []string{"app/Models/User.php"}, testutil.ListFiles(t, fs, basePath))
}

func TestRemoveSyncedFiles_PrunesUpToCategoryRoot(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteTree(t, fs, stubRoot, map[string]string{
		"controllers/a2/commerce/PaymentController.php": "controller",
		"controllers/a2/commerce/OrderController.php":   "controller",
	})
	_, err := newSynchronizer(fs).Sync(false)
	require.NoError(t, err)

	result, err := newUninstaller(fs).RemoveSyncedFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/srv/app/app/Http/Controllers/A2/commerce/OrderController.php",
		"/srv/app/app/Http/Controllers/A2/commerce/PaymentController.php",
	}, result.Removed)
	assert.False(t, testutil.Exists(fs, "/srv/app/app/Http/Controllers"))
	assert.True(t, testutil.Exists(fs, "/srv/app/app/Http"))
}

func TestRemoveSyncedFiles_RemovesEmptyCategoryRoot(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteTree(t, fs, stubRoot, map[string]string{
		"services/PaymentService.php": "service",
	})
	testutil.WriteTree(t, fs, basePath, map[string]string{
		"app/Models/User.php": "user",
	})
	_, err := newSynchronizer(fs).Sync(false)
	require.NoError(t, err)

	result, err := newUninstaller(fs).RemoveSyncedFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/app/app/Services/PaymentService.php"}, result.Removed)
	assert.False(t, testutil.Exists(fs, "/srv/app/app/Services"))
	assert.True(t, testutil.Exists(fs, "/srv/app/app"))
	assert.Equal(t, []string{"app/Models/User.php"}, testutil.ListFiles(t, fs, basePath))
}

func TestRemoveSyncedFiles_KeepsCategoryRootWithUserFiles(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteTree(t, fs, stubRoot, map[string]string{
		"models/a2/Order.php": "order",
	})
	_, err := newSynchronizer(fs).Sync(false)
	require.NoError(t, err)
	testutil.WriteTree(t, fs, basePath, map[string]string{
		"app/Models/User.php": "user",
	})

	_, err = newUninstaller(fs).RemoveSyncedFiles()
	require.NoError(t, err)

	assert.False(t, testutil.Exists(fs, "/srv/app/app/Models/A2"))
	assert.True(t, testutil.Exists(fs, "/srv/app/app/Models/User.php"))
}

func TestRemoveSyncedFiles_KeepsNonEmptyDirectories(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteTree(t, fs, stubRoot, map[string]string{
		"controllers/a2/commerce/PaymentController.php": "controller",
	})
	_, err := newSynchronizer(fs).Sync(false)
	require.NoError(t, err)
	testutil.WriteTree(t, fs, basePath, map[string]string{
		"app/Http/Controllers/A2/CustomController.php": "mine",
	})

	result, err := newUninstaller(fs).RemoveSyncedFiles()
	require.NoError(t, err)

	assert.Len(t, result.Removed, 1)
	assert.False(t, testutil.Exists(fs, "/srv/app/app/Http/Controllers/A2/commerce"))
	assert.True(t, testutil.Exists(fs, "/srv/app/app/Http/Controllers/A2/CustomController.php"))
}

func TestRemoveSyncedFiles_FileDirectlyInCategoryRoot(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteTree(t, fs, stubRoot, map[string]string{
		"config/shop.php": "config",
	})
	_, err := newSynchronizer(fs).Sync(false)
	require.NoError(t, err)

	result, err := newUninstaller(fs).RemoveSyncedFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/app/config/shop.php"}, result.Removed)
	// the empty category root goes, the base path stays
	assert.False(t, testutil.Exists(fs, "/srv/app/config"))
	assert.True(t, testutil.Exists(fs, basePath))
}

func TestRemoveSyncedFiles_SkipsAbsentTargets(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteTree(t, fs, stubRoot, map[string]string{
		"models/Order.php":   "order",
		"models/Invoice.php": "invoice",
	})
	testutil.WriteTree(t, fs, basePath, map[string]string{
		"app/Models/Order.php": "order",
	})

	result, err := newUninstaller(fs).RemoveSyncedFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"/srv/app/app/Models/Order.php"}, result.Removed)
}

func TestRemoveSyncedFiles_LeavesUnmappedFiles(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteTree(t, fs, stubRoot, map[string]string{
		"unknown/Thing.php": "thing",
	})
	testutil.WriteTree(t, fs, basePath, map[string]string{
		"unknown/Thing.php": "thing",
	})

	result, err := newUninstaller(fs).RemoveSyncedFiles()
	require.NoError(t, err)

	assert.Empty(t, result.Removed)
	assert.True(t, testutil.Exists(fs, "/srv/app/unknown/Thing.php"))
}

func TestRemoveSyncedFiles_RemoveFailure(t *testing.T) {
	base := testutil.NewTestFS()
	testutil.WriteTree(t, base, stubRoot, map[string]string{
		"jobs/A.php": "a",
		"jobs/B.php": "b",
	})
	testutil.WriteTree(t, base, basePath, map[string]string{
		"app/Jobs/A.php": "a",
		"app/Jobs/B.php": "b",
	})
	fs := testutil.NewFailingFS(base)
	fs.RemoveErrors["/srv/app/app/Jobs/B.php"] = fmt.Errorf("permission denied")

	result, err := newUninstaller(fs).RemoveSyncedFiles()
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRemove))
	assert.Equal(t, []string{"/srv/app/app/Jobs/A.php"}, result.Removed)
	assert.True(t, testutil.Exists(base, "/srv/app/app/Jobs/B.php"))
}
