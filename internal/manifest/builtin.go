package manifest

import "github.com/pbxplan/pbxplan/api"

// Builtin returns the default registration plan: the TaskSnap source files
// that are on disk but not yet referenced by TaskSnap.xcodeproj. The list
// is ordered; the reporter preserves this order verbatim.
//
// The slice is freshly allocated on every call so callers may filter or
// re-slice without clobbering the defaults.
func Builtin() []api.FileEntry {
	entries := make([]api.FileEntry, len(builtinFiles))
	copy(entries, builtinFiles)
	return entries
}

var builtinFiles = []api.FileEntry{
	// Views
	{Path: "TaskSnap/Views/LaunchScreen.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},
	{Path: "TaskSnap/Views/AnimationView.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},
	{Path: "TaskSnap/Views/AnimationSettingsView.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},
	{Path: "TaskSnap/Views/PatternInsightsView.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},
	{Path: "TaskSnap/Views/SpaceDetailView.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},
	{Path: "TaskSnap/Views/SharedSpacesListView.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},
	{Path: "TaskSnap/Views/BackupRestoreView.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},
	{Path: "TaskSnap/Views/ClutterScoreView.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},
	{Path: "TaskSnap/Views/AnalyticsView.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},
	{Path: "TaskSnap/Views/BodyDoublingRoomView.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},
	{Path: "TaskSnap/Views/ThemePickerView.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},
	{Path: "TaskSnap/Views/LoadingView.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},
	{Path: "TaskSnap/Views/ErrorStateView.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Views"}},

	// Services
	{Path: "TaskSnap/Services/SoundEffectManager.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Services"}},
	{Path: "TaskSnap/Services/FocusSoundManager.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Services"}},
	{Path: "TaskSnap/Services/PatternRecognitionService.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Services"}},
	{Path: "TaskSnap/Services/ShareManager.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Services"}},
	{Path: "TaskSnap/Services/TaskSuggestionService.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Services"}},
	{Path: "TaskSnap/Services/BackupService.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Services"}},
	{Path: "TaskSnap/Services/SmartCategoryService.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Services"}},
	{Path: "TaskSnap/Services/ClutterScoreService.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Services"}},
	{Path: "TaskSnap/Services/BodyDoublingManager.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Services"}},
	{Path: "TaskSnap/Services/ThemeManager.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Services"}},
	{Path: "TaskSnap/Services/NotificationManager.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Services"}},
	{Path: "TaskSnap/Services/SyncManager.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Services"}},

	// Utils
	{Path: "TaskSnap/Utils/PressableButton.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Utils"}},
	{Path: "TaskSnap/Utils/AnimatedToggle.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Utils"}},
	{Path: "TaskSnap/Utils/AccessibilitySettings.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Utils"}},
	{Path: "TaskSnap/Utils/DynamicTypeModifier.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Utils"}},
	{Path: "TaskSnap/Utils/HighContrastColors.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Utils"}},

	// ViewModels
	{Path: "TaskSnap/ViewModels/AnalyticsViewModel.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "ViewModels"}},

	// Models
	{Path: "TaskSnap/Models/FocusSession.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Models"}},
	{Path: "TaskSnap/Models/CelebrationTheme.swift", Kind: "sourcecode.swift", Group: []string{"TaskSnap", "Models"}},
}
