package chip8

/// NumKeys is the number of keys on the CHIP-8 keypad.
///
const NumKeys = 16

/// SetKey sets the state of one of the 16 keys. Indices outside of
/// 0x0-0xF are ignored.
///
func (vm *VM) SetKey(key int, pressed bool) {
	if key >= 0 && key < NumKeys {
		vm.Keys[key] = pressed
	}
}

/// PressKey emulates a CHIP-8 key being pressed.
///
func (vm *VM) PressKey(key int) {
	vm.SetKey(key, true)
}

/// ReleaseKey emulates a CHIP-8 key being released.
///
func (vm *VM) ReleaseKey(key int) {
	vm.SetKey(key, false)
}

/// Key returns true if the key is held down.
///
func (vm *VM) Key(key int) bool {
	return key >= 0 && key < NumKeys && vm.Keys[key]
}

/// firstKey returns the lowest key index held down.
///
func (vm *VM) firstKey() (byte, bool) {
	for i, down := range vm.Keys {
		if down {
			return byte(i), true
		}
	}

	return 0, false
}
