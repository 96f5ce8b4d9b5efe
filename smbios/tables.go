// Copyright 2017-2018 DigitalOcean.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package smbios

// lengthOf returns a LengthFunc reading the element count from a sibling
// uint8 field.
func lengthOf(name string) LengthFunc {
	return func(r *Record) (int, bool) {
		n, ok := r.Uint8(name)
		return int(n), ok
	}
}

// lengthProduct returns a LengthFunc multiplying two sibling uint8 fields,
// for vectors declared as "count x record width" bytes.
func lengthProduct(count, width string) LengthFunc {
	return func(r *Record) (int, bool) {
		n, ok := r.Uint8(count)
		if !ok {
			return 0, false
		}
		w, ok := r.Uint8(width)
		if !ok {
			return 0, false
		}
		return int(n) * int(w), ok
	}
}

// lengthToEnd returns a LengthFunc deriving the element count from the
// header's declared structure length: (length - offset) / elemSize covers
// "rest of the formatted section" vectors.
func lengthToEnd(offset, elemSize int) LengthFunc {
	return func(r *Record) (int, bool) {
		n := (int(r.Header.Length) - offset) / elemSize
		return n, n >= 0
	}
}

// onBoardDeviceSchema describes one device entry of a type 10 structure:
// a device-type byte (bit 7: enabled) followed by a description string.
var onBoardDeviceSchema = &Schema{
	Name: "On Board Device",
	Fields: []Field{
		{Name: "device_type", Kind: FieldUint8},
		{Name: "description", Kind: FieldString},
	},
}

// memoryChannelDeviceSchema describes one device entry of a type 37
// structure: channel load followed by the memory device handle.
var memoryChannelDeviceSchema = &Schema{
	Name: "Memory Channel Device",
	Fields: []Field{
		{Name: "load", Kind: FieldUint8},
		{Name: "handle", Kind: FieldUint16},
	},
}

// schemas is the per-type schema catalog, indexed by structure type.  Each
// schema lists the formatted-section fields in specification order, across
// all SMBIOS revisions; older firmwares simply truncate the tail.
var schemas = map[uint8]*Schema{
	0: {
		Type: 0, Name: "BIOS Information",
		Fields: []Field{
			{Name: "vendor", Kind: FieldString},
			{Name: "bios_version", Kind: FieldString},
			{Name: "bios_starting_address", Kind: FieldUint16},
			{Name: "bios_release_date", Kind: FieldString},
			{Name: "bios_rom_size", Kind: FieldUint8},
			{Name: "bios_characteristics", Kind: FieldUint64},
			{Name: "bios_characteristics_ext", Kind: FieldUint8, Array: 2},
			{Name: "system_bios_major_release", Kind: FieldUint8},
			{Name: "system_bios_minor_release", Kind: FieldUint8},
			{Name: "embedded_ctrl_firmware_major_release", Kind: FieldUint8},
			{Name: "embedded_ctrl_firmware_minor_release", Kind: FieldUint8},
			{Name: "extended_bios_rom_size", Kind: FieldUint16},
		},
	},
	1: {
		Type: 1, Name: "System Information",
		Fields: []Field{
			{Name: "manufacturer", Kind: FieldString},
			{Name: "product_name", Kind: FieldString},
			{Name: "version", Kind: FieldString},
			{Name: "serial_number", Kind: FieldString},
			{Name: "uuid", Kind: FieldUint8, Array: 16},
			{Name: "wakeup_type", Kind: FieldUint8},
			{Name: "sku_number", Kind: FieldString},
			{Name: "family", Kind: FieldString},
		},
	},
	2: {
		Type: 2, Name: "Baseboard Information",
		Fields: []Field{
			{Name: "manufacturer", Kind: FieldString},
			{Name: "product", Kind: FieldString},
			{Name: "version", Kind: FieldString},
			{Name: "serial_number", Kind: FieldString},
			{Name: "asset_tag", Kind: FieldString},
			{Name: "feature_flags", Kind: FieldUint8},
			{Name: "location_in_chassis", Kind: FieldString},
			{Name: "chassis_handle", Kind: FieldUint16},
			{Name: "board_type", Kind: FieldUint8},
			{Name: "contained_object_count", Kind: FieldUint8},
			{Name: "contained_object_handles", Kind: FieldUint16, Length: lengthOf("contained_object_count")},
		},
	},
	3: {
		Type: 3, Name: "Chassis Information",
		Fields: []Field{
			{Name: "manufacturer", Kind: FieldString},
			{Name: "chassis_type", Kind: FieldUint8},
			{Name: "version", Kind: FieldString},
			{Name: "serial_number", Kind: FieldString},
			{Name: "asset_tag", Kind: FieldString},
			{Name: "boot_up_state", Kind: FieldUint8},
			{Name: "power_supply_state", Kind: FieldUint8},
			{Name: "thermal_state", Kind: FieldUint8},
			{Name: "security_status", Kind: FieldUint8},
			{Name: "oem_defined", Kind: FieldUint32},
			{Name: "height", Kind: FieldUint8},
			{Name: "power_cord_count", Kind: FieldUint8},
			{Name: "contained_element_count", Kind: FieldUint8},
			{Name: "contained_element_record_length", Kind: FieldUint8},
			{Name: "contained_elements", Kind: FieldUint8, Length: lengthProduct("contained_element_count", "contained_element_record_length")},
			{Name: "sku_number", Kind: FieldString},
		},
	},
	4: {
		Type: 4, Name: "Processor Information",
		Fields: []Field{
			{Name: "socket_designation", Kind: FieldString},
			{Name: "processor_type", Kind: FieldUint8},
			{Name: "processor_family", Kind: FieldUint8},
			{Name: "processor_manufacturer", Kind: FieldString},
			{Name: "processor_id", Kind: FieldUint64},
			{Name: "processor_version", Kind: FieldString},
			{Name: "voltage", Kind: FieldUint8},
			{Name: "external_clock", Kind: FieldUint16},
			{Name: "max_speed", Kind: FieldUint16},
			{Name: "current_speed", Kind: FieldUint16},
			{Name: "status", Kind: FieldUint8},
			{Name: "processor_upgrade", Kind: FieldUint8},
			{Name: "l1_cache_handle", Kind: FieldUint16},
			{Name: "l2_cache_handle", Kind: FieldUint16},
			{Name: "l3_cache_handle", Kind: FieldUint16},
			{Name: "serial_number", Kind: FieldString},
			{Name: "asset_tag", Kind: FieldString},
			{Name: "part_number", Kind: FieldString},
			{Name: "core_count", Kind: FieldUint8},
			{Name: "core_enabled", Kind: FieldUint8},
			{Name: "thread_count", Kind: FieldUint8},
			{Name: "processor_characteristics", Kind: FieldUint16},
			{Name: "processor_family2", Kind: FieldUint16},
			{Name: "core_count2", Kind: FieldUint16},
			{Name: "core_enabled2", Kind: FieldUint16},
			{Name: "thread_count2", Kind: FieldUint16},
			{Name: "thread_enabled", Kind: FieldUint16},
		},
	},
	5: {
		Type: 5, Name: "Memory Controller Information",
		Fields: []Field{
			{Name: "error_detecting_method", Kind: FieldUint8},
			{Name: "error_correcting_capability", Kind: FieldUint8},
			{Name: "supported_interleave", Kind: FieldUint8},
			{Name: "current_interleave", Kind: FieldUint8},
			{Name: "maximum_memory_module_size", Kind: FieldUint8},
			{Name: "supported_speeds", Kind: FieldUint16},
			{Name: "supported_memory_types", Kind: FieldUint16},
			{Name: "memory_module_voltage", Kind: FieldUint8},
			{Name: "associated_memory_slot_count", Kind: FieldUint8},
			{Name: "memory_module_configuration_handles", Kind: FieldUint16, Length: lengthOf("associated_memory_slot_count")},
			{Name: "enabled_error_correcting_capabilities", Kind: FieldUint8},
		},
	},
	6: {
		Type: 6, Name: "Memory Module Information",
		Fields: []Field{
			{Name: "socket_designation", Kind: FieldString},
			{Name: "bank_connections", Kind: FieldUint8},
			{Name: "current_speed", Kind: FieldUint8},
			{Name: "current_memory_type", Kind: FieldUint16},
			{Name: "installed_size", Kind: FieldUint8},
			{Name: "enabled_size", Kind: FieldUint8},
			{Name: "error_status", Kind: FieldUint8},
		},
	},
	7: {
		Type: 7, Name: "Cache Information",
		Fields: []Field{
			{Name: "socket_designation", Kind: FieldString},
			{Name: "cache_configuration", Kind: FieldUint16},
			{Name: "maximum_cache_size", Kind: FieldUint16},
			{Name: "installed_size", Kind: FieldUint16},
			{Name: "supported_sram_type", Kind: FieldUint16},
			{Name: "current_sram_type", Kind: FieldUint16},
			{Name: "cache_speed", Kind: FieldUint8},
			{Name: "error_correction_type", Kind: FieldUint8},
			{Name: "system_cache_type", Kind: FieldUint8},
			{Name: "associativity", Kind: FieldUint8},
			{Name: "maximum_cache_size2", Kind: FieldUint32},
			{Name: "installed_cache_size2", Kind: FieldUint32},
		},
	},
	8: {
		Type: 8, Name: "Port Connector Information",
		Fields: []Field{
			{Name: "internal_reference_designator", Kind: FieldString},
			{Name: "internal_connector_type", Kind: FieldUint8},
			{Name: "external_reference_designator", Kind: FieldString},
			{Name: "external_connector_type", Kind: FieldUint8},
			{Name: "port_type", Kind: FieldUint8},
		},
	},
	9: {
		Type: 9, Name: "System Slots",
		Fields: []Field{
			{Name: "slot_designation", Kind: FieldString},
			{Name: "slot_type", Kind: FieldUint8},
			{Name: "slot_data_bus_width", Kind: FieldUint8},
			{Name: "current_usage", Kind: FieldUint8},
			{Name: "slot_length", Kind: FieldUint8},
			{Name: "slot_id", Kind: FieldUint16},
			{Name: "slot_characteristics1", Kind: FieldUint8},
			{Name: "slot_characteristics2", Kind: FieldUint8},
			{Name: "segment_group_number", Kind: FieldUint16},
			{Name: "bus_number", Kind: FieldUint8},
			{Name: "device_function_number", Kind: FieldUint8},
			{Name: "data_bus_width", Kind: FieldUint8},
			{Name: "peer_grouping_count", Kind: FieldUint8},
			{Name: "peer_groups", Kind: FieldUint8, Length: lengthOf("peer_grouping_count")},
			{Name: "slot_information", Kind: FieldUint8},
			{Name: "slot_physical_width", Kind: FieldUint8},
			{Name: "slot_pitch", Kind: FieldUint8},
			{Name: "slot_height", Kind: FieldUint8},
		},
	},
	10: {
		Type: 10, Name: "On Board Devices Information",
		Fields: []Field{
			// Device entries are interleaved (type, description) pairs,
			// two bytes each, filling the rest of the formatted section.
			{Name: "devices", Kind: FieldStruct, Sub: onBoardDeviceSchema, Length: lengthToEnd(headerLen, 2)},
		},
	},
	11: {
		Type: 11, Name: "OEM Strings",
		Fields: []Field{
			{Name: "count", Kind: FieldUint8},
		},
	},
	12: {
		Type: 12, Name: "System Configuration Options",
		Fields: []Field{
			{Name: "count", Kind: FieldUint8},
		},
	},
	13: {
		Type: 13, Name: "BIOS Language Information",
		Fields: []Field{
			{Name: "installable_languages", Kind: FieldUint8},
			{Name: "flags", Kind: FieldUint8},
			{Name: "reserved", Kind: FieldUint8, Array: 15},
			{Name: "current_language", Kind: FieldString},
		},
	},
	14: {
		Type: 14, Name: "Group Associations",
		Fields: []Field{
			{Name: "group_name", Kind: FieldString},
			{Name: "item_type", Kind: FieldUint8},
			{Name: "item_handle", Kind: FieldUint16},
		},
	},
	15: {
		Type: 15, Name: "System Event Log",
		Fields: []Field{
			{Name: "log_area_length", Kind: FieldUint16},
			{Name: "log_header_start_offset", Kind: FieldUint16},
			{Name: "log_data_start_offset", Kind: FieldUint16},
			{Name: "access_method", Kind: FieldUint8},
			{Name: "log_status", Kind: FieldUint8},
			{Name: "log_change_token", Kind: FieldUint32},
			{Name: "access_method_address", Kind: FieldUint32},
			{Name: "log_header_format", Kind: FieldUint8},
			{Name: "supported_log_type_descriptor_count", Kind: FieldUint8},
			{Name: "log_type_descriptor_length", Kind: FieldUint8},
			{Name: "supported_log_type_descriptors", Kind: FieldUint8, Length: lengthProduct("supported_log_type_descriptor_count", "log_type_descriptor_length")},
		},
	},
	16: {
		Type: 16, Name: "Physical Memory Array",
		Fields: []Field{
			{Name: "location", Kind: FieldUint8},
			{Name: "use", Kind: FieldUint8},
			{Name: "memory_error_correction", Kind: FieldUint8},
			{Name: "maximum_capacity", Kind: FieldUint32},
			{Name: "memory_error_information_handle", Kind: FieldUint16},
			{Name: "memory_device_count", Kind: FieldUint16},
			{Name: "extended_maximum_capacity", Kind: FieldUint64},
		},
	},
	17: {
		Type: 17, Name: "Memory Device",
		Fields: []Field{
			{Name: "physical_memory_array_handle", Kind: FieldUint16},
			{Name: "memory_error_information_handle", Kind: FieldUint16},
			{Name: "total_width", Kind: FieldUint16},
			{Name: "data_width", Kind: FieldUint16},
			{Name: "size", Kind: FieldUint16},
			{Name: "form_factor", Kind: FieldUint8},
			{Name: "device_set", Kind: FieldUint8},
			{Name: "device_locator", Kind: FieldString},
			{Name: "bank_locator", Kind: FieldString},
			{Name: "memory_type", Kind: FieldUint8},
			{Name: "type_detail", Kind: FieldUint16},
			{Name: "speed", Kind: FieldUint16},
			{Name: "manufacturer", Kind: FieldString},
			{Name: "serial_number", Kind: FieldString},
			{Name: "asset_tag", Kind: FieldString},
			{Name: "part_number", Kind: FieldString},
			{Name: "attributes", Kind: FieldUint8},
			{Name: "extended_size", Kind: FieldUint32},
			{Name: "configured_memory_speed", Kind: FieldUint16},
			{Name: "minimum_voltage", Kind: FieldUint16},
			{Name: "maximum_voltage", Kind: FieldUint16},
			{Name: "configured_voltage", Kind: FieldUint16},
			{Name: "memory_technology", Kind: FieldUint8},
			{Name: "memory_operating_mode_capability", Kind: FieldUint16},
			{Name: "firmware_version", Kind: FieldString},
			{Name: "module_manufacturer_id", Kind: FieldUint16},
			{Name: "module_product_id", Kind: FieldUint16},
			{Name: "memory_subsystem_controller_manufacturer_id", Kind: FieldUint16},
			{Name: "memory_subsystem_controller_product_id", Kind: FieldUint16},
			{Name: "non_volatile_size", Kind: FieldUint64},
			{Name: "volatile_size", Kind: FieldUint64},
			{Name: "cache_size", Kind: FieldUint64},
			{Name: "logical_size", Kind: FieldUint64},
			{Name: "extended_speed", Kind: FieldUint32},
			{Name: "extended_configured_memory_speed", Kind: FieldUint32},
		},
	},
	18: {
		Type: 18, Name: "32-bit Memory Error Information",
		Fields: []Field{
			{Name: "error_type", Kind: FieldUint8},
			{Name: "error_granularity", Kind: FieldUint8},
			{Name: "error_operation", Kind: FieldUint8},
			{Name: "vendor_syndrome", Kind: FieldUint32},
			{Name: "memory_array_error_address", Kind: FieldUint32},
			{Name: "device_error_address", Kind: FieldUint32},
			{Name: "error_resolution", Kind: FieldUint32},
		},
	},
	19: {
		Type: 19, Name: "Memory Array Mapped Address",
		Fields: []Field{
			{Name: "starting_address", Kind: FieldUint32},
			{Name: "ending_address", Kind: FieldUint32},
			{Name: "memory_array_handle", Kind: FieldUint16},
			{Name: "partition_width", Kind: FieldUint8},
			{Name: "extended_starting_address", Kind: FieldUint64},
			{Name: "extended_ending_address", Kind: FieldUint64},
		},
	},
	20: {
		Type: 20, Name: "Memory Device Mapped Address",
		Fields: []Field{
			{Name: "starting_address", Kind: FieldUint32},
			{Name: "ending_address", Kind: FieldUint32},
			{Name: "memory_device_handle", Kind: FieldUint16},
			{Name: "memory_array_mapped_address_handle", Kind: FieldUint16},
			{Name: "partition_row_position", Kind: FieldUint8},
			{Name: "interleave_position", Kind: FieldUint8},
			{Name: "interleaved_data_depth", Kind: FieldUint8},
			{Name: "extended_starting_address", Kind: FieldUint64},
			{Name: "extended_ending_address", Kind: FieldUint64},
		},
	},
	21: {
		Type: 21, Name: "Built-in Pointing Device",
		Fields: []Field{
			{Name: "device_type", Kind: FieldUint8},
			{Name: "interface", Kind: FieldUint8},
			{Name: "button_count", Kind: FieldUint8},
		},
	},
	22: {
		Type: 22, Name: "Portable Battery",
		Fields: []Field{
			{Name: "location", Kind: FieldString},
			{Name: "manufacturer", Kind: FieldString},
			{Name: "manufacture_date", Kind: FieldString},
			{Name: "serial_number", Kind: FieldString},
			{Name: "device_name", Kind: FieldString},
			{Name: "device_chemistry", Kind: FieldUint8},
			{Name: "design_capacity", Kind: FieldUint16},
			{Name: "design_voltage", Kind: FieldUint16},
			{Name: "sbds_version_number", Kind: FieldString},
			{Name: "maximum_error_in_battery_data", Kind: FieldUint8},
			{Name: "sbds_serial_number", Kind: FieldUint16},
			{Name: "sbds_manufacture_date", Kind: FieldUint16},
			{Name: "sbds_device_chemistry", Kind: FieldString},
			{Name: "design_capacity_multiplier", Kind: FieldUint8},
			{Name: "oem_specific", Kind: FieldUint32},
		},
	},
	23: {
		Type: 23, Name: "System Reset",
		Fields: []Field{
			{Name: "capabilities", Kind: FieldUint8},
			{Name: "reset_count", Kind: FieldUint16},
			{Name: "reset_limit", Kind: FieldUint16},
			{Name: "timer_interval", Kind: FieldUint16},
			{Name: "timeout", Kind: FieldUint16},
		},
	},
	24: {
		Type: 24, Name: "Hardware Security",
		Fields: []Field{
			{Name: "hardware_security_settings", Kind: FieldUint8},
		},
	},
	25: {
		Type: 25, Name: "System Power Controls",
		Fields: []Field{
			{Name: "next_scheduled_power_on_month", Kind: FieldUint8},
			{Name: "next_scheduled_power_on_day_of_month", Kind: FieldUint8},
			{Name: "next_scheduled_power_on_hour", Kind: FieldUint8},
			{Name: "next_scheduled_power_on_minute", Kind: FieldUint8},
			{Name: "next_scheduled_power_on_second", Kind: FieldUint8},
		},
	},
	26: {
		Type: 26, Name: "Voltage Probe",
		Fields: probeFields(),
	},
	27: {
		Type: 27, Name: "Cooling Device",
		Fields: []Field{
			{Name: "temperature_probe_handle", Kind: FieldUint16},
			{Name: "device_type_and_status", Kind: FieldUint8},
			{Name: "cooling_unit_group", Kind: FieldUint8},
			{Name: "oem_defined", Kind: FieldUint32},
			{Name: "nominal_speed", Kind: FieldUint16},
			{Name: "description", Kind: FieldString},
		},
	},
	28: {
		Type: 28, Name: "Temperature Probe",
		Fields: probeFields(),
	},
	29: {
		Type: 29, Name: "Electrical Current Probe",
		Fields: probeFields(),
	},
	30: {
		Type: 30, Name: "Out of Band Remote Access",
		Fields: []Field{
			{Name: "manufacturer_name", Kind: FieldString},
			{Name: "connections", Kind: FieldUint8},
		},
	},
	32: {
		Type: 32, Name: "System Boot Information",
		Fields: []Field{
			{Name: "reserved", Kind: FieldUint8, Array: 6},
			{Name: "boot_status", Kind: FieldUint8, Length: lengthToEnd(10, 1)},
		},
	},
	33: {
		Type: 33, Name: "64-bit Memory Error Information",
		Fields: []Field{
			{Name: "error_type", Kind: FieldUint8},
			{Name: "error_granularity", Kind: FieldUint8},
			{Name: "error_operation", Kind: FieldUint8},
			{Name: "vendor_syndrome", Kind: FieldUint32},
			{Name: "memory_array_error_address", Kind: FieldUint64},
			{Name: "device_error_address", Kind: FieldUint64},
			{Name: "error_resolution", Kind: FieldUint64},
		},
	},
	34: {
		Type: 34, Name: "Management Device",
		Fields: []Field{
			{Name: "description", Kind: FieldString},
			{Name: "device_type", Kind: FieldUint8},
			{Name: "address", Kind: FieldUint32},
			{Name: "address_type", Kind: FieldUint8},
		},
	},
	35: {
		Type: 35, Name: "Management Device Component",
		Fields: []Field{
			{Name: "description", Kind: FieldString},
			{Name: "management_device_handle", Kind: FieldUint16},
			{Name: "component_handle", Kind: FieldUint16},
			{Name: "threshold_handle", Kind: FieldUint16},
		},
	},
	36: {
		Type: 36, Name: "Management Device Threshold Data",
		Fields: []Field{
			{Name: "lower_threshold_non_critical", Kind: FieldUint16},
			{Name: "upper_threshold_non_critical", Kind: FieldUint16},
			{Name: "lower_threshold_critical", Kind: FieldUint16},
			{Name: "upper_threshold_critical", Kind: FieldUint16},
			{Name: "lower_threshold_non_recoverable", Kind: FieldUint16},
			{Name: "upper_threshold_non_recoverable", Kind: FieldUint16},
		},
	},
	37: {
		Type: 37, Name: "Memory Channel",
		Fields: []Field{
			{Name: "channel_type", Kind: FieldUint8},
			{Name: "maximum_channel_load", Kind: FieldUint8},
			{Name: "memory_device_count", Kind: FieldUint8},
			// Each device entry is a (load, handle) pair.
			{Name: "devices", Kind: FieldStruct, Sub: memoryChannelDeviceSchema, Length: lengthOf("memory_device_count")},
		},
	},
	38: {
		Type: 38, Name: "IPMI Device Information",
		Fields: []Field{
			{Name: "interface_type", Kind: FieldUint8},
			{Name: "ipmi_specification_revision", Kind: FieldUint8},
			{Name: "i2c_target_address", Kind: FieldUint8},
			{Name: "nv_storage_device_address", Kind: FieldUint8},
			{Name: "base_address", Kind: FieldUint64},
			{Name: "base_address_modifier", Kind: FieldUint8},
			{Name: "interrupt_number", Kind: FieldUint8},
		},
	},
	39: {
		Type: 39, Name: "System Power Supply",
		Fields: []Field{
			{Name: "power_unit_group", Kind: FieldUint8},
			{Name: "location", Kind: FieldString},
			{Name: "device_name", Kind: FieldString},
			{Name: "manufacturer", Kind: FieldString},
			{Name: "serial_number", Kind: FieldString},
			{Name: "asset_tag_number", Kind: FieldString},
			{Name: "model_part_number", Kind: FieldString},
			{Name: "revision_level", Kind: FieldString},
			{Name: "max_power_capacity", Kind: FieldUint16},
			{Name: "power_supply_characteristics", Kind: FieldUint16},
			{Name: "input_voltage_probe_handle", Kind: FieldUint16},
			{Name: "cooling_device_handle", Kind: FieldUint16},
			{Name: "input_current_probe_handle", Kind: FieldUint16},
		},
	},
	40: {
		Type: 40, Name: "Additional Information",
		Fields: []Field{
			{Name: "additional_information_entity_count", Kind: FieldUint8},
			{Name: "additional_information_entities", Kind: FieldUint8, Length: lengthOf("additional_information_entity_count")},
		},
	},
	41: {
		Type: 41, Name: "Onboard Devices Extended Information",
		Fields: []Field{
			{Name: "reference_designation", Kind: FieldString},
			{Name: "device_type", Kind: FieldUint8},
			{Name: "device_type_instance", Kind: FieldUint8},
			{Name: "segment_group_number", Kind: FieldUint16},
			{Name: "bus_number", Kind: FieldUint8},
			{Name: "device_function_number", Kind: FieldUint8},
		},
	},
	42: {
		Type: 42, Name: "Management Controller Host Interface",
		Fields: []Field{
			{Name: "interface_type", Kind: FieldUint8},
			{Name: "interface_type_specific_data_length", Kind: FieldUint8},
			{Name: "interface_type_specific_data", Kind: FieldUint8, Length: lengthOf("interface_type_specific_data_length")},
			{Name: "protocol_record_count", Kind: FieldUint8},
			{Name: "protocol_records", Kind: FieldUint8, Length: lengthOf("protocol_record_count")},
		},
	},
	43: {
		Type: 43, Name: "TPM Device",
		Fields: []Field{
			{Name: "vendor_id", Kind: FieldUint8, Array: 4},
			{Name: "major_spec_version", Kind: FieldUint8},
			{Name: "minor_spec_version", Kind: FieldUint8},
			{Name: "firmware_version1", Kind: FieldUint32},
			{Name: "firmware_version2", Kind: FieldUint32},
			{Name: "description", Kind: FieldString},
			{Name: "characteristics", Kind: FieldUint64},
			{Name: "oem_defined", Kind: FieldUint32},
		},
	},
	44: {
		Type: 44, Name: "Processor Additional Information",
		Fields: []Field{
			{Name: "referenced_handle", Kind: FieldUint16},
			{Name: "processor_specific_block", Kind: FieldUint8, Length: lengthToEnd(6, 1)},
		},
	},
	45: {
		Type: 45, Name: "Firmware Inventory Information",
		Fields: []Field{
			{Name: "firmware_component_name", Kind: FieldString},
			{Name: "firmware_version", Kind: FieldString},
			{Name: "version_format", Kind: FieldUint8},
			{Name: "firmware_id", Kind: FieldString},
			{Name: "firmware_id_format", Kind: FieldUint8},
			{Name: "release_date", Kind: FieldString},
			{Name: "manufacturer", Kind: FieldString},
			{Name: "lowest_supported_firmware_version", Kind: FieldString},
			{Name: "image_size", Kind: FieldUint64},
			{Name: "characteristics", Kind: FieldUint16},
			{Name: "state", Kind: FieldUint8},
			{Name: "associated_component_count", Kind: FieldUint8},
			{Name: "associated_component_handles", Kind: FieldUint16, Length: lengthOf("associated_component_count")},
		},
	},
	46: {
		Type: 46, Name: "String Property",
		Fields: []Field{
			{Name: "string_property_id", Kind: FieldUint16},
			{Name: "string_property_value", Kind: FieldString},
			{Name: "parent_handle", Kind: FieldUint16},
		},
	},
	126: {Type: 126, Name: "Inactive"},
	127: {Type: 127, Name: "End of Table"},
}

// probeFields is the shared field layout of the voltage, temperature and
// electrical current probe structures (types 26, 28 and 29).
func probeFields() []Field {
	return []Field{
		{Name: "description", Kind: FieldString},
		{Name: "location_and_status", Kind: FieldUint8},
		{Name: "maximum_value", Kind: FieldUint16},
		{Name: "minimum_value", Kind: FieldUint16},
		{Name: "resolution", Kind: FieldUint16},
		{Name: "tolerance", Kind: FieldUint16},
		{Name: "accuracy", Kind: FieldUint16},
		{Name: "oem_defined", Kind: FieldUint32},
		{Name: "nominal_value", Kind: FieldUint16},
	}
}

func init() {
	// Broken table definitions are programming errors; fail at startup
	// rather than at decode time.
	for _, s := range schemas {
		s.mustValid()
	}
}

// SchemaForType returns the schema registered for a structure type.
func SchemaForType(typ uint8) (*Schema, bool) {
	s, ok := schemas[typ]
	return s, ok
}

// DecodeStructure decodes a Structure using the schema registered for its
// type.  It returns ok == false for types without a registered schema; the
// raw Structure, with its formatted bytes and strings, is the supported
// fallback presentation for those.
func DecodeStructure(st *Structure, v Version) (*Record, bool) {
	s, ok := schemas[st.Header.Type]
	if !ok {
		return nil, false
	}

	return s.Decode(st, v), true
}
