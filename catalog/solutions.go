package catalog

import "github.com/fixitquick/fixitquick"

var builtinSolutions = []*fixitquick.Solution{
	{
		ID:               "function-keys-locked",
		Title:            "Function Keys Not Working (Fn Lock)",
		Category:         "keyboard",
		ShortDescription: "Fix function keys that are performing special actions instead of F1-F12 functions",
		Difficulty:       fixitquick.DifficultyEasy,
		Steps: []fixitquick.Step{
			{
				Title:       "Identify your function lock key",
				Description: "Look for the \"Fn Lock\" or \"FnLk\" key on your keyboard. It's often the Escape key or F1-F12 key with a lock symbol.",
			},
			{
				Title:       "Toggle function lock",
				Description: "Press and hold the Fn key, then press the Fn Lock key (often Esc or a function key). This toggles between standard F1-F12 behavior and special functions.",
			},
			{
				Title:       "Check function key behavior",
				Description: "Try using a function key. If it now performs its standard F1-F12 function, you've successfully unlocked the function keys.",
			},
			{
				Title:       "Alternative method",
				Description: "On some laptops, you may need to press Fn + Ctrl, Fn + Caps Lock, or Fn + Shift to toggle function lock.",
			},
		},
		RelatedSolutions: []string{"keyboard-shortcuts", "keyboard-not-typing"},
	},
	{
		ID:               "keyboard-shortcuts",
		Title:            "Essential Keyboard Shortcuts",
		Category:         "keyboard",
		ShortDescription: "Learn the most useful keyboard shortcuts to boost productivity",
		Difficulty:       fixitquick.DifficultyEasy,
		Steps: []fixitquick.Step{
			{
				Title:       "Copy, Cut, and Paste",
				Description: "Copy: Ctrl+C (Cmd+C on Mac)\nCut: Ctrl+X (Cmd+X on Mac)\nPaste: Ctrl+V (Cmd+V on Mac)",
			},
			{
				Title:       "Undo and Redo",
				Description: "Undo: Ctrl+Z (Cmd+Z on Mac)\nRedo: Ctrl+Y or Ctrl+Shift+Z (Cmd+Shift+Z on Mac)",
			},
			{
				Title:       "Select All",
				Description: "Ctrl+A (Cmd+A on Mac) selects all content in the current document or window",
			},
			{
				Title:       "Switch between applications",
				Description: "Alt+Tab (Cmd+Tab on Mac) lets you quickly switch between open applications",
			},
		},
	},
	{
		ID:               "wifi-not-connecting",
		Title:            "Wi-Fi Not Connecting",
		Category:         "wifi",
		ShortDescription: "Troubleshoot when your device won't connect to Wi-Fi networks",
		Difficulty:       fixitquick.DifficultyMedium,
		Steps: []fixitquick.Step{
			{
				Title:       "Check Wi-Fi is turned on",
				Description: "Ensure the Wi-Fi switch or function key is enabled. Look for the Wi-Fi icon in your system tray or menu bar.",
			},
			{
				Title:       "Restart your device",
				Description: "Sometimes simply restarting your laptop or phone can resolve connection issues.",
			},
			{
				Title:       "Forget and reconnect to network",
				Description: "Go to Wi-Fi settings, find your network, select \"Forget\" or \"Remove\", then reconnect with the password.",
			},
			{
				Title:       "Reset network settings",
				Description: "If all else fails, you can reset your network settings (this will remove all saved networks).",
			},
		},
		RelatedSolutions: []string{"slow-internet"},
	},
	{
		ID:               "keyboard-not-typing",
		Title:            "Keyboard Not Typing Correctly",
		Category:         "keyboard",
		ShortDescription: "Fix issues when your keyboard is typing wrong characters or not responding",
		Difficulty:       fixitquick.DifficultyMedium,
		Steps: []fixitquick.Step{
			{
				Title:       "Check for physical obstructions",
				Description: "Ensure there are no crumbs, dust or debris under the keys. Gently clean if necessary.",
			},
			{
				Title:       "Check keyboard language",
				Description: "Make sure your keyboard language is set correctly. You can check this in your system settings.",
			},
			{
				Title:       "Restart your computer",
				Description: "Sometimes a simple restart can resolve keyboard input issues.",
			},
			{
				Title:       "Update keyboard drivers",
				Description: "Check for keyboard driver updates in your device manager or system settings.",
			},
		},
		RelatedSolutions: []string{"function-keys-locked"},
	},
	{
		ID:               "battery-draining",
		Title:            "Battery Draining Too Quickly",
		Category:         "battery",
		ShortDescription: "Extend your laptop battery life with these solutions",
		Difficulty:       fixitquick.DifficultyMedium,
		Steps: []fixitquick.Step{
			{
				Title:       "Check power-hungry applications",
				Description: "Use Task Manager (Windows) or Activity Monitor (Mac) to identify apps using excessive power.",
			},
			{
				Title:       "Adjust screen brightness",
				Description: "Lower your screen brightness to significantly extend battery life.",
			},
			{
				Title:       "Enable power saving mode",
				Description: "Use Battery Saver (Windows) or Low Power Mode (Mac) to extend battery life.",
			},
			{
				Title:       "Close background applications",
				Description: "Make sure to properly close apps you're not using, as they may continue running in the background.",
			},
		},
	},
	{
		ID:               "slow-internet",
		Title:            "Slow Internet Connection",
		Category:         "wifi",
		ShortDescription: "Troubleshoot and fix slow internet speeds on your devices",
		Difficulty:       fixitquick.DifficultyMedium,
		Steps: []fixitquick.Step{
			{
				Title:       "Check your internet speed",
				Description: "Use a speed test website like Speedtest.net to check your current connection speed.",
			},
			{
				Title:       "Move closer to your router",
				Description: "Wi-Fi signal weakens with distance and obstacles. Move closer to your router for better performance.",
			},
			{
				Title:       "Restart your router",
				Description: "Unplug your router, wait 30 seconds, then plug it back in. Wait 2-3 minutes for it to fully restart.",
			},
			{
				Title:       "Check for bandwidth-heavy applications",
				Description: "Close applications that might be using a lot of bandwidth, like video streaming services or large downloads.",
			},
			{
				Title:       "Use a wired connection",
				Description: "If possible, connect your device directly to the router using an Ethernet cable for faster, more stable speeds.",
			},
		},
		RelatedSolutions: []string{"wifi-not-connecting"},
	},
	{
		ID:               "blue-screen",
		Title:            "Fix Blue Screen of Death (BSOD)",
		Category:         "software",
		ShortDescription: "Troubleshoot and resolve Windows blue screen crashes",
		Difficulty:       fixitquick.DifficultyHard,
		Steps: []fixitquick.Step{
			{
				Title:       "Note the error code",
				Description: "When you see a blue screen, look for an error code or message (like MEMORY_MANAGEMENT or SYSTEM_SERVICE_EXCEPTION).",
			},
			{
				Title:       "Boot in Safe Mode",
				Description: "Restart your computer and press F8 during startup to enter Safe Mode, which loads only essential drivers.",
			},
			{
				Title:       "Check for recent changes",
				Description: "Did you recently install new hardware or software? Try uninstalling it to see if it resolves the issue.",
			},
			{
				Title:       "Update drivers",
				Description: "Outdated or corrupt drivers are a common cause of BSODs. Update your graphics, network, and chipset drivers.",
			},
			{
				Title:       "Run system diagnostics",
				Description: "Use Windows Memory Diagnostic tool to check for RAM issues. Run \"mdsched.exe\" from the Start menu search.",
			},
		},
	},
	{
		ID:               "frozen-screen",
		Title:            "Fix Frozen or Unresponsive Screen",
		Category:         "software",
		ShortDescription: "Solutions for when your computer screen freezes or becomes unresponsive",
		Difficulty:       fixitquick.DifficultyMedium,
		Steps: []fixitquick.Step{
			{
				Title:       "Wait briefly",
				Description: "Sometimes the system is just processing a heavy task. Wait 2-3 minutes to see if it responds.",
			},
			{
				Title:       "Force quit applications",
				Description: "Windows: Press Ctrl+Alt+Del and select Task Manager\nMac: Press Command+Option+Esc\nThen select the unresponsive application and click \"End Task\" or \"Force Quit\"",
			},
			{
				Title:       "Hard restart if necessary",
				Description: "Press and hold the power button for 5-10 seconds until the device shuts down. Wait a moment, then turn it back on.",
			},
			{
				Title:       "Check for overheating",
				Description: "If your computer feels hot, shut it down, ensure vents aren't blocked, and give it time to cool down before restarting.",
			},
		},
		RelatedSolutions: []string{"blue-screen"},
	},
	{
		ID:               "no-sound",
		Title:            "No Audio or Sound Issues",
		Category:         "audio",
		ShortDescription: "Troubleshoot when your device has no sound or audio problems",
		Difficulty:       fixitquick.DifficultyEasy,
		Steps: []fixitquick.Step{
			{
				Title:       "Check physical connections",
				Description: "Ensure headphones or speakers are properly connected to the correct audio port.",
			},
			{
				Title:       "Check volume and mute settings",
				Description: "Make sure your volume is turned up and not muted. Check both system volume and application volume.",
			},
			{
				Title:       "Verify correct output device",
				Description: "Right-click the speaker icon (Windows) or check Sound preferences (Mac) to ensure the correct audio output device is selected.",
			},
			{
				Title:       "Restart audio services",
				Description: "Windows: Open Services app, find \"Windows Audio\" service, right-click and select \"Restart\"\nMac: Open Terminal and type: sudo killall coreaudiod",
			},
			{
				Title:       "Update audio drivers",
				Description: "Check for and install updates for your audio drivers through Device Manager (Windows) or Software Update (Mac).",
			},
		},
	},
	{
		ID:               "webcam-not-working",
		Title:            "Webcam Not Working",
		Category:         "software",
		ShortDescription: "Fix issues with your webcam in video calls and applications",
		Difficulty:       fixitquick.DifficultyMedium,
		Steps: []fixitquick.Step{
			{
				Title:       "Check privacy settings",
				Description: "Ensure your operating system and browser have permission to access the camera. Check settings > privacy > camera.",
			},
			{
				Title:       "Check if other apps are using the camera",
				Description: "Most webcams can only be used by one application at a time. Close other apps that might be using the camera.",
			},
			{
				Title:       "Restart your application",
				Description: "Close and reopen the application trying to use the webcam (like Zoom, Teams, or your browser).",
			},
			{
				Title:       "Update webcam drivers",
				Description: "Check for and install updates for your webcam drivers through Device Manager (Windows) or Software Update (Mac).",
			},
		},
	},
}
